package dictionary_cache

import (
	"context"
	"sync/atomic"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/port"
)

// RegionNameCache хранит соответствие регионов названиям городов,
// как их понимает внешнее API объявлений. Устроен так же, как
// кэш районов: ленивая загрузка один раз на процесс.
type RegionNameCache struct {
	repo   port.DictionaryRepositoryPort
	loaded atomic.Bool
	cities atomic.Pointer[map[int]string]
}

func NewRegionNameCache(repo port.DictionaryRepositoryPort) *RegionNameCache {
	cache := &RegionNameCache{repo: repo}
	empty := map[int]string{}
	cache.cities.Store(&empty)
	return cache
}

// CityName возвращает название города для региона.
// Второе значение false, если регион неизвестен или у него нет названий.
func (c *RegionNameCache) CityName(ctx context.Context, regionID int) (string, bool) {
	c.ensureLoaded(ctx)

	cities := *c.cities.Load()
	name, ok := cities[regionID]
	return name, ok
}

func (c *RegionNameCache) ensureLoaded(ctx context.Context) {
	if c.loaded.Load() {
		return
	}

	logger := contextkeys.LoggerFromContext(ctx)
	cacheLogger := logger.WithFields(port.Fields{"component": "RegionNameCache"})

	regions, err := c.repo.LoadRegions(ctx)
	if err != nil {
		cacheLogger.Error("Failed to load region cache", err, nil)
		c.loaded.Store(true)
		return
	}

	cities := make(map[int]string, len(regions))
	for _, region := range regions {
		if len(region.Names) == 0 {
			continue
		}
		// Провайдер ждет город в последнем, локализованном варианте названия.
		city := capitalizeCityName(region.Names[len(region.Names)-1])
		if city == "" {
			continue
		}
		cities[region.ID] = city
	}

	c.cities.Store(&cities)
	c.loaded.Store(true)

	cacheLogger.Info("Loaded regions into cache", port.Fields{"regions_count": len(cities)})
}
