package domain

// District - район внутри региона.
type District struct {
	ID       int
	RegionID int
	Name     string
}

// Region - регион со всеми локализованными вариантами названия.
type Region struct {
	ID   int
	Name string
	// Names - варианты написания, последний используется как название города
	// для внешнего API объявлений.
	Names []string
}
