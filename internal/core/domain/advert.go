package domain

import "time"

// LoadDirection задает направление подгрузки ленты объявлений.
type LoadDirection int

const (
	DirectionPrev   LoadDirection = 1 // более новые объявления относительно якоря
	DirectionNext   LoadDirection = 2 // более старые объявления относительно якоря
	DirectionLatest LoadDirection = 3 // последняя страница без якоря
)

// Advert - нормализованное объявление в формате мобильного приложения.
type Advert struct {
	ID       int64
	SourceID int // номер площадки-источника, 0 - неизвестная
	TypeID   int // тип сделки: 1 - аренда, 2 - продажа
	URL      string
	RegionID int
	Region   string
	District string
	Title    string
	Photos   []string
	Rooms    int
	Area     *float64
	Price    *float64
	Currency string
	ExtPrice *string
	Agency   bool
	Date     time.Time
	CreatedAt time.Time
	ValidTo  time.Time
}

// PageRequest описывает запрос страницы ленты.
type PageRequest struct {
	// AdvertID - якорное объявление, от которого листаем. nil или 0 - якоря нет.
	AdvertID  *int64
	Direction LoadDirection
	// LastViewID - последнее просмотренное объявление, для подсчета пропущенных.
	LastViewID *int64
}
