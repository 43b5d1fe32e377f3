package port

import (
	"context"
	"io"
	"real-estate-manager/internal/core/domain"
)

// MultipartBody - готовое multipart-тело формы
type MultipartBody struct {
	ContentType string
	Body        io.Reader
}

// ReferenceDataPort - справочники удаленного API (без авторизации).
type ReferenceDataPort interface {
	FetchRegions(ctx context.Context) ([]domain.Region, error)
	FetchCities(ctx context.Context) ([]domain.City, error)
}

// RealEstateAPIPort - контракт клиента удаленного API.
// При ошибке срезы возвращаются пустыми (не nil) вместе с ошибкой.
type RealEstateAPIPort interface {
	ReferenceDataPort

	FetchAgents(ctx context.Context) ([]domain.Agent, error)
	FetchListings(ctx context.Context) ([]domain.Listing, error)
	FetchListing(ctx context.Context, id int) (*domain.Listing, error)

	CreateListing(ctx context.Context, body MultipartBody) (int, error)
	CreateAgent(ctx context.Context, body MultipartBody) (int, error)
	DeleteListing(ctx context.Context, id int) error
}
