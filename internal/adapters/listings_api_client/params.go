package listings_api_client

import (
	"context"
	"net/url"
	"strconv"

	"mobile-api-service/internal/core/domain"
)

// pageSize - фиксированный размер страницы внешнего API.
const pageSize = 10

// buildFilterParams переводит фильтр пользователя в query-параметры провайдера.
// Nil-фильтр означает "только аренда, без ограничений".
func (c *Client) buildFilterParams(ctx context.Context, filter *domain.Filter) url.Values {
	params := url.Values{}
	params.Set("offer_type", "RENT")

	if filter == nil {
		return params
	}

	// Внутренние коды типов раскрываются в типы строений провайдера.
	for _, typeID := range filter.Types {
		for _, buildingType := range buildingTypesByID[typeID] {
			params.Add("building_type", buildingType)
		}
	}

	// Границы диапазонов уходят провайдеру только если заданы явно.
	if filter.Price != nil {
		if filter.Price.From != nil {
			params.Set("min_price", strconv.Itoa(*filter.Price.From))
		}
		if filter.Price.To != nil {
			params.Set("max_price", strconv.Itoa(*filter.Price.To))
		}
	}
	if filter.Area != nil {
		if filter.Area.From != nil {
			params.Set("min_area", strconv.Itoa(*filter.Area.From))
		}
		if filter.Area.To != nil {
			params.Set("max_area", strconv.Itoa(*filter.Area.To))
		}
	}

	for _, rooms := range filter.Rooms {
		params.Add("rooms", strconv.Itoa(rooms))
	}

	// Флаг "только от собственников" инвертируется в is_business=false.
	// Инверсия намеренная, провайдер фильтрует по признаку бизнеса.
	if filter.Agency {
		params.Set("is_business", "false")
	}

	// Идентификаторы районов провайдер не знает, передаются названия.
	// Параметр опускается целиком, если ни один район не разрешился.
	if len(filter.Districts) > 0 {
		for _, name := range c.districts.Names(ctx, filter.Districts) {
			params.Add("district", name)
		}
	}

	if filter.RegionID != 0 {
		if city, ok := c.regions.CityName(ctx, filter.RegionID); ok {
			params.Set("city", city)
		}
	}

	return params
}

// buildPageParams добавляет к фильтру курсорную пагинацию.
func (c *Client) buildPageParams(ctx context.Context, filter *domain.Filter, page domain.PageRequest) url.Values {
	params := c.buildFilterParams(ctx, filter)

	params.Set("limit", strconv.Itoa(pageSize))

	switch {
	case page.AdvertID != nil && *page.AdvertID != 0:
		// Prev листает к более новым объявлениям, остальное - к более старым.
		if page.Direction == domain.DirectionPrev {
			params.Set("direction", "after")
		} else {
			params.Set("direction", "before")
		}
		params.Set("id", strconv.FormatInt(*page.AdvertID, 10))
	case page.Direction == domain.DirectionLatest:
		params.Set("direction", "latest")
	}

	return params
}

// buildMissedParams собирает параметры счетчика новых объявлений.
// Лимит и направление не передаются, якорем служит последний просмотренный id.
func (c *Client) buildMissedParams(ctx context.Context, filter *domain.Filter, page domain.PageRequest) url.Values {
	params := c.buildFilterParams(ctx, filter)

	if page.LastViewID != nil && *page.LastViewID != 0 {
		params.Set("id", strconv.FormatInt(*page.LastViewID, 10))
	}

	return params
}
