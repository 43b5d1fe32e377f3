package usecases_port

import (
	"context"
	"real-estate-manager/internal/core/domain"
)

type GetRegionsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Region, error)
}

// GetCitiesUseCasePort: regionID == nil - все города.
type GetCitiesUseCasePort interface {
	Execute(ctx context.Context, regionID *int) ([]domain.City, error)
}

type GetAgentsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Agent, error)
}
