package usecase

import (
	"context"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

type CreateListingUseCase struct {
	api port.RealEstateAPIPort
	formSubmitter
}

func NewCreateListingUseCase(api port.RealEstateAPIPort, drafts port.DraftStorePort, events port.DomainEventsPort) *CreateListingUseCase {
	return &CreateListingUseCase{api: api, formSubmitter: formSubmitter{drafts: drafts, events: events}}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, sessionID uuid.UUID, form *forms.Form) (int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "CreateListing",
		"session_id": sessionID.String(),
	})
	ucLogger.Info("Use case started", nil)

	id, err := uc.submit(ctx, ucLogger, sessionID, domain.FormListing, form, uc.api.CreateListing, domain.EventListingCreated)
	if err != nil {
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"listing_id": id})
	return id, nil
}
