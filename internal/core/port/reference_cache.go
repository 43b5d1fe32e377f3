package port

import (
	"context"
	"real-estate-manager/internal/core/domain"
	"time"
)

// ReferenceCachePort кэширует справочники регионов и городов.
type ReferenceCachePort interface {
	GetRegions(ctx context.Context) ([]domain.Region, bool)
	SetRegions(ctx context.Context, regions []domain.Region, ttl time.Duration)
	GetCities(ctx context.Context) ([]domain.City, bool)
	SetCities(ctx context.Context, cities []domain.City, ttl time.Duration)
}
