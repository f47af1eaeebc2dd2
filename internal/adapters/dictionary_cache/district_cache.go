package dictionary_cache

import (
	"context"
	"sync/atomic"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/port"
)

// DistrictNameCache хранит справочник районов в памяти процесса.
// Загружается лениво при первом обращении, справочник только читается,
// поэтому гонка первых обращений безопасна: проигравший просто
// перезапишет карту тем же содержимым.
type DistrictNameCache struct {
	repo    port.DictionaryRepositoryPort
	loaded  atomic.Bool
	mapping atomic.Pointer[map[int]string]
}

func NewDistrictNameCache(repo port.DictionaryRepositoryPort) *DistrictNameCache {
	cache := &DistrictNameCache{repo: repo}
	empty := map[int]string{}
	cache.mapping.Store(&empty)
	return cache
}

// Names возвращает названия районов для известных идентификаторов.
// Неизвестные и пустые названия молча пропускаются.
func (c *DistrictNameCache) Names(ctx context.Context, ids []int) []string {
	c.ensureLoaded(ctx)

	mapping := *c.mapping.Load()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := mapping[id]; ok && name != "" {
			names = append(names, name)
		}
	}

	return names
}

func (c *DistrictNameCache) ensureLoaded(ctx context.Context) {
	if c.loaded.Load() {
		return
	}

	logger := contextkeys.LoggerFromContext(ctx)
	cacheLogger := logger.WithFields(port.Fields{"component": "DistrictNameCache"})

	districts, err := c.repo.LoadDistricts(ctx)
	if err != nil {
		// Флаг взводится и при ошибке, чтобы не долбить базу на каждый запрос.
		cacheLogger.Error("Failed to load district cache", err, nil)
		c.loaded.Store(true)
		return
	}

	mapping := make(map[int]string, len(districts))
	for _, district := range districts {
		mapping[district.ID] = district.Name
	}

	c.mapping.Store(&mapping)
	c.loaded.Store(true)

	cacheLogger.Info("Loaded districts into cache", port.Fields{"districts_count": len(mapping)})
}
