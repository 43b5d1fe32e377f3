package usecase

import (
	"context"
	"fmt"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

type DeleteListingUseCase struct {
	api    port.RealEstateAPIPort
	events port.DomainEventsPort
}

func NewDeleteListingUseCase(api port.RealEstateAPIPort, events port.DomainEventsPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{api: api, events: events}
}

// Execute удаляет листинг в удаленном API. При ошибке листинг остается на месте,
// ошибка логируется и возвращается вызывающему.
func (uc *DeleteListingUseCase) Execute(ctx context.Context, listingID int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	if listingID <= 0 {
		return fmt.Errorf("%w: listing id must be positive", domain.ErrInvalidInput)
	}

	if err := uc.api.DeleteListing(ctx, listingID); err != nil {
		ucLogger.Error("Error deleting listing", err, nil)
		return err
	}

	if err := uc.events.Publish(ctx, domain.NewDomainEvent(domain.EventListingDeleted, listingID)); err != nil {
		ucLogger.Warn("Failed to publish listing.deleted event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
