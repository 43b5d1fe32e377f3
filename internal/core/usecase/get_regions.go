package usecase

import (
	"context"
	"time"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

type GetRegionsUseCase struct {
	api   port.ReferenceDataPort
	cache port.ReferenceCachePort
	ttl   time.Duration
}

func NewGetRegionsUseCase(api port.ReferenceDataPort, cache port.ReferenceCachePort, ttl time.Duration) *GetRegionsUseCase {
	return &GetRegionsUseCase{api: api, cache: cache, ttl: ttl}
}

// Execute отдает регионы из кэша, при промахе идет в удаленный API.
// Неудачный ответ не кэшируется.
func (uc *GetRegionsUseCase) Execute(ctx context.Context) ([]domain.Region, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetRegions"})

	if regions, ok := uc.cache.GetRegions(ctx); ok {
		ucLogger.Debug("Cache HIT", port.Fields{"count": len(regions)})
		return regions, nil
	}

	regions, err := uc.api.FetchRegions(ctx)
	if err != nil {
		ucLogger.Error("Failed to fetch regions", err, nil)
		return []domain.Region{}, err
	}

	uc.cache.SetRegions(ctx, regions, uc.ttl)
	ucLogger.Info("Regions fetched and cached", port.Fields{"count": len(regions)})
	return regions, nil
}
