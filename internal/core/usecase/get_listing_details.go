package usecase

import (
	"context"
	"fmt"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

type GetListingDetailsUseCase struct {
	api port.RealEstateAPIPort
}

func NewGetListingDetailsUseCase(api port.RealEstateAPIPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{api: api}
}

// Execute возвращает листинг и до восьми других листингов того же региона.
// Если список для карусели получить не удалось, карусель просто пустая.
func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, listingID int) (*domain.ListingDetails, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	if listingID <= 0 {
		return nil, fmt.Errorf("%w: listing id must be positive", domain.ErrInvalidInput)
	}

	listing, err := uc.api.FetchListing(ctx, listingID)
	if err != nil {
		ucLogger.Error("Failed to fetch listing", err, nil)
		return nil, err
	}

	details := &domain.ListingDetails{Listing: *listing, Similar: []domain.Listing{}}

	all, err := uc.api.FetchListings(ctx)
	if err != nil {
		ucLogger.Warn("Failed to fetch listings for carousel", port.Fields{"error": err.Error()})
		return details, nil
	}

	collection := domain.NewListingCollection()
	collection.SetListings(all)
	details.Similar = collection.SimilarTo(*listing, constants.SimilarListingsLimit)

	ucLogger.Info("Use case finished", port.Fields{"similar": len(details.Similar)})
	return details, nil
}
