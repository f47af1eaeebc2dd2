package listings_api_client

import (
	"encoding/json"
	"fmt"
	"time"

	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

// sourceIDs сворачивает имя источника провайдера во внутренний код.
// Неизвестный источник дает нулевой код.
var sourceIDs = map[string]int{
	"olx":       1,
	"otodom":    2,
	"morizon":   3,
	"domiporta": 4,
	"gratka":    5,
	"gumtree":   6,
}

// offerTypeIDs сворачивает тип предложения во внутренний код.
var offerTypeIDs = map[string]int{
	"RENT": 1,
	"SALE": 2,
}

// listingTimeLayouts - форматы дат, которые встречаются у провайдера.
// Перебираются по порядку, как и сами объявления приходят вперемешку.
var listingTimeLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// mapListing разбирает одну запись провайдера в доменную модель.
// Ошибка возвращается только на битом JSON, все остальные поля
// получают безопасные значения по умолчанию.
func mapListing(raw []byte, logger port.LoggerPort) (*domain.Advert, error) {
	var dto listingDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing: %w", err)
	}

	// Мобильный клиент показывает только обложку, остальные фото не нужны.
	photos := []string{}
	if len(dto.PhotosURLs) > 0 {
		photos = []string{dto.PhotosURLs[0]}
	}

	typeID, ok := offerTypeIDs[dto.OfferType]
	if !ok {
		typeID = offerTypeIDs["RENT"]
	}

	region := dto.City
	if region == "" {
		region = dto.Region
	}

	// Провайдер может не прислать валюту и признак бизнеса,
	// по умолчанию считаем злотые и агентское объявление.
	currency := "zl"
	if dto.CurrencyCode != nil {
		currency = *dto.CurrencyCode
	}
	agency := true
	if dto.IsBusiness != nil {
		agency = *dto.IsBusiness
	}

	createdAt := parseListingTime(dto.CreatedTime, logger)

	// Отсутствующий срок действия наследует дату создания.
	// Присланный, но нечитаемый срок падает на текущее время через парсер.
	validTo := createdAt
	if dto.ValidToTime != "" {
		validTo = parseListingTime(dto.ValidToTime, logger)
	}

	return &domain.Advert{
		ID:        dto.ID,
		SourceID:  sourceIDs[dto.Source],
		TypeID:    typeID,
		URL:       dto.URL,
		RegionID:  dto.RegionID,
		Region:    region,
		District:  dto.District,
		Title:     dto.Title,
		Photos:    photos,
		Rooms:     dto.Rooms,
		Area:      dto.AreaM2,
		Price:     dto.Price,
		Currency:  currency,
		ExtPrice:  nil,
		Agency:    agency,
		Date:      parseListingTime(dto.ParsedAt, logger),
		CreatedAt: createdAt,
		ValidTo:   validTo,
	}, nil
}

// parseListingTime разбирает дату провайдера. Пустая или нечитаемая
// строка заменяется текущим временем, чтобы запись не терялась.
func parseListingTime(value string, logger port.LoggerPort) time.Time {
	if value == "" {
		return time.Now().UTC()
	}

	for _, layout := range listingTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	logger.Warn("Could not parse datetime from listings API", port.Fields{"value": value})
	return time.Now().UTC()
}
