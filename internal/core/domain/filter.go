package domain

// Range - границы диапазона поиска. nil означает "не задано".
type Range struct {
	From *int
	To   *int
}

// Filter - сохраненный поисковый фильтр пользователя.
type Filter struct {
	CountryID int
	RegionID  int
	Districts []int
	Types     []int // внутренние коды типов недвижимости
	Rooms     []int
	// Agency: true - пользователь хочет видеть только объявления владельцев.
	Agency bool
	Area   *Range
	Price  *Range
}
