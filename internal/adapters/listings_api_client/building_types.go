package listings_api_client

// Типы строений внешнего API объявлений.
const (
	buildingBlock             = "BLOCK"
	buildingApartmentBuilding = "APARTMENT_BUILDING"
	buildingTenement          = "TENEMENT"
	buildingHouse             = "HOUSE"
	buildingInfill            = "INFILL"
	buildingRibbon            = "RIBBON"
	buildingLoft              = "LOFT"
	buildingDetached          = "WOLNOSTOJACY"
	buildingOther             = "OTHER"
)

// Внутренние коды типов недвижимости.
const (
	typeRoom      = 1
	typeApartment = 2
	typeHouse     = 3
)

// buildingTypeIDs сворачивает тип строения провайдера во внутренний код.
// Связь "многие к одному", поэтому обратная таблица ведется отдельно,
// а не выводится из этой.
var buildingTypeIDs = map[string]int{
	buildingBlock:             typeApartment,
	buildingApartmentBuilding: typeApartment,
	buildingTenement:          typeHouse,
	buildingHouse:             typeHouse,
	buildingInfill:            typeApartment,
	buildingRibbon:            typeApartment,
	buildingLoft:              typeApartment,
	buildingDetached:          typeHouse,
	buildingOther:             typeApartment,
}

// buildingTypesByID раскрывает внутренний код в набор типов строений
// для параметра building_type запроса к провайдеру.
var buildingTypesByID = map[int][]string{
	typeRoom: {
		buildingOther,
	},
	typeApartment: {
		buildingBlock,
		buildingApartmentBuilding,
		buildingInfill,
		buildingRibbon,
		buildingLoft,
	},
	typeHouse: {
		buildingTenement,
		buildingHouse,
		buildingDetached,
	},
}
