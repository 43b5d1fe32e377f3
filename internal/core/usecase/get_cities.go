package usecase

import (
	"context"
	"time"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

type GetCitiesUseCase struct {
	api   port.ReferenceDataPort
	cache port.ReferenceCachePort
	ttl   time.Duration
}

func NewGetCitiesUseCase(api port.ReferenceDataPort, cache port.ReferenceCachePort, ttl time.Duration) *GetCitiesUseCase {
	return &GetCitiesUseCase{api: api, cache: cache, ttl: ttl}
}

// Execute возвращает города, при заданном regionID - только города этого региона
// (выпадающий список городов формы листинга зависит от выбранного региона).
func (uc *GetCitiesUseCase) Execute(ctx context.Context, regionID *int) ([]domain.City, error) {
	fields := port.Fields{"use_case": "GetCities"}
	if regionID != nil {
		fields["region_id"] = *regionID
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(fields)

	cities, ok := uc.cache.GetCities(ctx)
	if !ok {
		var err error
		cities, err = uc.api.FetchCities(ctx)
		if err != nil {
			ucLogger.Error("Failed to fetch cities", err, nil)
			return []domain.City{}, err
		}
		uc.cache.SetCities(ctx, cities, uc.ttl)
		ucLogger.Info("Cities fetched and cached", port.Fields{"count": len(cities)})
	}

	if regionID == nil {
		return cities, nil
	}
	result := make([]domain.City, 0)
	for _, c := range cities {
		if c.RegionID == *regionID {
			result = append(result, c)
		}
	}
	return result, nil
}
