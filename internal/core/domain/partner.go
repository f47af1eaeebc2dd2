package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Типы партнеров: определяют набор обязательных полей лида.
const (
	PartnerTypeRealEstate = 1 // аренда недвижимости
	PartnerTypeMoving     = 2 // переезды, адреса "откуда" и "куда"
)

// PartnerAdvert - рекламное объявление партнера для региона пользователя.
type PartnerAdvert struct {
	ID            int64
	PartnerID     int64
	PartnerName   string
	PartnerTypeID int
	BannerID      uuid.UUID
	RegionID      int
	// Endpoint - URL-шаблон партнера с плейсхолдером {text}.
	// Пустая строка означает доставку лида по почте.
	Endpoint  string
	Meta      json.RawMessage
	CreatedAt time.Time
}

// Lead - заявка пользователя партнеру.
type Lead struct {
	PartnerAdvertID int64
	Code            string // телефонный код страны
	Phone           string
	Rooms           string
	Name            string
	Description     string
	AddressIn       string
	AddressOut      string
}

// PhoneNumber возвращает полный номер телефона заявки.
func (l Lead) PhoneNumber() string {
	return l.Code + l.Phone
}
