package port

import "context"

// DistrictNameCachePort разрешает идентификаторы районов в названия
// для внешнего API. Справочник загружается лениво один раз на процесс.
type DistrictNameCachePort interface {
	// Names возвращает названия для известных идентификаторов,
	// неизвестные молча пропускаются.
	Names(ctx context.Context, ids []int) []string
}

// RegionNameCachePort разрешает идентификатор региона в название города
// в том виде, который понимает внешнее API объявлений.
type RegionNameCachePort interface {
	CityName(ctx context.Context, regionID int) (string, bool)
}
