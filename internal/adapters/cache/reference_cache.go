package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

const (
	regionsKey = "reference:regions"
	citiesKey  = "reference:cities"
)

// MemcacheClient - подмножество *memcache.Client для второго уровня кэша.
type MemcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
}

// ReferenceCache - двухуровневый кэш справочников: локальный ccache и, опционально, memcached.
type ReferenceCache struct {
	regions   *ccache.Cache[[]domain.Region]
	cities    *ccache.Cache[[]domain.City]
	memcached MemcacheClient
}

// NewReferenceCache создает кэш. memcached может быть nil - тогда работает только локальный уровень.
func NewReferenceCache(memcached MemcacheClient) *ReferenceCache {
	return &ReferenceCache{
		regions:   ccache.New(ccache.Configure[[]domain.Region]().MaxSize(16)),
		cities:    ccache.New(ccache.Configure[[]domain.City]().MaxSize(16)),
		memcached: memcached,
	}
}

func (c *ReferenceCache) GetRegions(ctx context.Context) ([]domain.Region, bool) {
	if item := c.regions.Get(regionsKey); item != nil && !item.Expired() {
		return item.Value(), true
	}

	var regions []domain.Region
	ttl, ok := c.getRemote(ctx, regionsKey, &regions)
	if !ok {
		return nil, false
	}
	c.regions.Set(regionsKey, regions, ttl)
	return regions, true
}

func (c *ReferenceCache) SetRegions(ctx context.Context, regions []domain.Region, ttl time.Duration) {
	c.regions.Set(regionsKey, regions, ttl)
	c.setRemote(ctx, regionsKey, regions, ttl)
}

func (c *ReferenceCache) GetCities(ctx context.Context) ([]domain.City, bool) {
	if item := c.cities.Get(citiesKey); item != nil && !item.Expired() {
		return item.Value(), true
	}

	var cities []domain.City
	ttl, ok := c.getRemote(ctx, citiesKey, &cities)
	if !ok {
		return nil, false
	}
	c.cities.Set(citiesKey, cities, ttl)
	return cities, true
}

func (c *ReferenceCache) SetCities(ctx context.Context, cities []domain.City, ttl time.Duration) {
	c.cities.Set(citiesKey, cities, ttl)
	c.setRemote(ctx, citiesKey, cities, ttl)
}

// Stop останавливает фоновые горутины ccache.
func (c *ReferenceCache) Stop() {
	c.regions.Stop()
	c.cities.Stop()
}

// localTTLOnRemoteHit - сколько держать локально значение, поднятое из memcached.
const localTTLOnRemoteHit = time.Minute

func (c *ReferenceCache) getRemote(ctx context.Context, key string, target interface{}) (time.Duration, bool) {
	if c.memcached == nil {
		return 0, false
	}
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "ReferenceCache", "key": key})

	item, err := c.memcached.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			logger.Warn("Memcached get failed", port.Fields{"error": err.Error()})
		}
		return 0, false
	}
	if err := json.Unmarshal(item.Value, target); err != nil {
		logger.Warn("Failed to unmarshal cached value", port.Fields{"error": err.Error()})
		return 0, false
	}
	logger.Debug("Cache HIT (memcached)", nil)
	return localTTLOnRemoteHit, true
}

func (c *ReferenceCache) setRemote(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.memcached == nil {
		return
	}
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "ReferenceCache", "key": key})

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal value for memcached", port.Fields{"error": err.Error()})
		return
	}
	item := &memcache.Item{Key: key, Value: data, Expiration: int32(ttl / time.Second)}
	if err := c.memcached.Set(item); err != nil {
		logger.Warn("Memcached set failed", port.Fields{"error": err.Error()})
	}
}
