package usecases_port

import (
	"context"
	"real-estate-manager/internal/core/domain"

	"github.com/google/uuid"
)

type ListListingsUseCasePort interface {
	Execute(ctx context.Context, sessionID uuid.UUID) (*domain.ListingsView, error)
}

type GetListingDetailsUseCasePort interface {
	Execute(ctx context.Context, listingID int) (*domain.ListingDetails, error)
}

type DeleteListingUseCasePort interface {
	Execute(ctx context.Context, listingID int) error
}
