package listings_api_client

import "encoding/json"

// listingsPageResponse - страница объявлений внешнего API.
// Элементы разбираются по одному, чтобы одна битая запись
// не ломала всю страницу.
type listingsPageResponse struct {
	Items []json.RawMessage `json:"items"`
}

// missedCountResponse - ответ счетчика новых объявлений.
type missedCountResponse struct {
	Total int `json:"total"`
}

// listingDTO - одно объявление в формате внешнего API.
type listingDTO struct {
	ID           int64    `json:"id"`
	Source       string   `json:"source"`
	OfferType    string   `json:"offer_type"`
	URL          string   `json:"url"`
	RegionID     int      `json:"region_id"`
	City         string   `json:"city"`
	Region       string   `json:"region"`
	District     string   `json:"district"`
	Title        string   `json:"title"`
	PhotosURLs   []string `json:"photos_urls"`
	Rooms        int      `json:"rooms"`
	AreaM2       *float64 `json:"area_m2"`
	Price        *float64 `json:"price"`
	CurrencyCode *string  `json:"currency_code"`
	IsBusiness   *bool    `json:"is_business"`
	CreatedTime  string   `json:"created_time"`
	ValidToTime  string   `json:"valid_to_time"`
	ParsedAt     string   `json:"parsed_at"`
}
