package rest

import (
	"encoding/json"
	"math"
	"time"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// JSON-ключи повторяют контракт мобильного приложения:
// запросы фильтра и ленты идут в PascalCase, остальное в camelCase,
// реклама партнеров - в snake_case. Менять регистр нельзя.

// --- Запросы ---

type registerRequest struct {
	FirebaseToken string `json:"FirebaseToken"`
	Platform      int    `json:"platform"`
	BuildNumber   int    `json:"buildNumber"`
}

type saveDeviceInfoRequest struct {
	Platform    int `json:"Platform"`
	BuildNumber int `json:"BuildNumber"`
}

type saveFirebaseTokenRequest struct {
	Token string `json:"token"`
}

type rangeDTO struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type filterDTO struct {
	CountryID int       `json:"CountryId"`
	RegionID  int       `json:"RegionId"`
	Districts []int     `json:"Districts"`
	Types     []int     `json:"Types"`
	Rooms     []int     `json:"Rooms"`
	Agency    bool      `json:"Agency"`
	Area      *rangeDTO `json:"Area"`
	Price     *rangeDTO `json:"Price"`
}

type readAdvertsRequest struct {
	AdvertID   *int64 `json:"AdvertId"`
	Direction  int    `json:"Direction"`
	LastViewID *int64 `json:"LastViewId"`
}

type saveSettingsRequest struct {
	LastViewID            *int64 `json:"lastViewId"`
	IsNotificationEnabled *bool  `json:"isNotificationEnabled"`
	LanguageCode          string `json:"languageCode"`
}

type saveLatestViewAdvertRequest struct {
	AdvertID int64 `json:"advertId"`
}

type saveIsNotificationEnabledRequest struct {
	Enable bool `json:"enable"`
}

type readFilesRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type sendMessageRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type sendPartnerLeadRequest struct {
	PartnerAdvertID int64  `json:"partnerAdvertId"`
	Code            string `json:"code"`
	Phone           string `json:"phone"`
	Rooms           string `json:"rooms"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AddressIn       string `json:"addressIn"`
	AddressOut      string `json:"addressOut"`
}

type generateSmsCodeRequest struct {
	PartnerAdvertID int64  `json:"partnerAdvertId"`
	PhoneCountryID  int    `json:"phoneCountryId"`
	Phone           string `json:"phone"`
}

type checkSmsCodeRequest struct {
	PartnerAdvertID int64 `json:"partnerAdvertId"`
	Code            int   `json:"code"`
}

type reportLogRequest struct {
	Level   int    `json:"level"`
	Message string `json:"message"`
}

type publicRegisterRequest struct {
	FirebaseToken string `json:"firebaseToken"`
	Platform      int    `json:"platform"`
	BuildNumber   int    `json:"buildNumber"`
	LanguageCode  string `json:"languageCode"`
	RegionID      int    `json:"regionId"`
}

// --- Ответы ---

type userResponse struct {
	UniqueID    uuid.UUID `json:"uniqueId"`
	Platform    int       `json:"platform"`
	BuildNumber int       `json:"buildNumber"`
	CreatedAt   *int64    `json:"createdAt"`
	UpdatedAt   *int64    `json:"updatedAt"`
}

type settingsResponse struct {
	LastViewID            *int64     `json:"lastViewId"`
	IsNotificationEnabled bool       `json:"isNotificationEnabled"`
	LanguageCode          string     `json:"languageCode"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             *time.Time `json:"updatedAt"`
}

type advertResponse struct {
	ID       int64    `json:"id"`
	SourceID int      `json:"sourceId"`
	TypeID   int      `json:"typeId"`
	URL      string   `json:"url"`
	RegionID int      `json:"regionId"`
	Region   string   `json:"region"`
	District string   `json:"district"`
	Title    string   `json:"title"`
	Photos   []string `json:"photos"`
	Rooms    int      `json:"rooms"`
	Area     *float64 `json:"area"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
	ExtPrice *string  `json:"extPrice"`
	Agency   bool     `json:"agency"`
	Date     int64    `json:"date"`
	Created  int64    `json:"createdAt"`
	ValidTo  int64    `json:"validTo"`
}

type districtResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RegionID int    `json:"regionId"`
}

type fileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Base64    string    `json:"base64"`
	CreatedAt time.Time `json:"createdAt"`
}

type partnerAdvertResponse struct {
	ID            int64           `json:"id"`
	PartnerID     int64           `json:"partner_id"`
	PartnerName   string          `json:"partner_name"`
	PartnerTypeID int             `json:"partner_type_id"`
	BannerID      uuid.UUID       `json:"banner_id"`
	RegionID      int             `json:"region_id"`
	Endpoint      string          `json:"endpoint"`
	Meta          json.RawMessage `json:"meta"`
	CreatedAt     time.Time       `json:"created_at"`
}

type partnerAdvertsResponseData struct {
	RegionID int                     `json:"region_id"`
	Adverts  []partnerAdvertResponse `json:"adverts"`
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// --- Преобразования ---

func toUserResponse(user *domain.User) userResponse {
	createdAt := user.CreatedAt.UTC().UnixMilli()
	response := userResponse{
		UniqueID:    user.UniqueID,
		Platform:    user.Platform,
		BuildNumber: user.BuildNumber,
		CreatedAt:   &createdAt,
	}
	if user.UpdatedAt != nil {
		updatedAt := user.UpdatedAt.UTC().UnixMilli()
		response.UpdatedAt = &updatedAt
	}
	return response
}

func toSettingsResponse(settings *domain.UserSettings) settingsResponse {
	return settingsResponse{
		LastViewID:            settings.LastViewID,
		IsNotificationEnabled: settings.IsNotificationEnabled,
		LanguageCode:          settings.LanguageCode,
		CreatedAt:             settings.CreatedAt,
		UpdatedAt:             settings.UpdatedAt,
	}
}

func toAdvertResponse(advert domain.Advert) advertResponse {
	photos := advert.Photos
	if photos == nil {
		photos = []string{}
	}
	return advertResponse{
		ID:       advert.ID,
		SourceID: advert.SourceID,
		TypeID:   advert.TypeID,
		URL:      advert.URL,
		RegionID: advert.RegionID,
		Region:   advert.Region,
		District: advert.District,
		Title:    advert.Title,
		Photos:   photos,
		Rooms:    advert.Rooms,
		Area:     advert.Area,
		Price:    advert.Price,
		Currency: advert.Currency,
		ExtPrice: advert.ExtPrice,
		Agency:   advert.Agency,
		Date:     advert.Date.UTC().UnixMilli(),
		Created:  advert.CreatedAt.UTC().UnixMilli(),
		ValidTo:  advert.ValidTo.UTC().UnixMilli(),
	}
}

func toAdvertsResponse(adverts []domain.Advert) []advertResponse {
	response := make([]advertResponse, 0, len(adverts))
	for _, advert := range adverts {
		response = append(response, toAdvertResponse(advert))
	}
	return response
}

// toFilterDTO собирает ответ ReadFilter. Незаданные границы диапазонов
// уходят клиенту сторожевыми значениями, как он их и присылает.
func toFilterDTO(filter *domain.Filter) filterDTO {
	return filterDTO{
		CountryID: filter.CountryID,
		RegionID:  filter.RegionID,
		Districts: filter.Districts,
		Types:     filter.Types,
		Rooms:     filter.Rooms,
		Agency:    filter.Agency,
		Area:      toRangeDTO(filter.Area),
		Price:     toRangeDTO(filter.Price),
	}
}

func toRangeDTO(bounds *domain.Range) *rangeDTO {
	from, to := 0, math.MaxInt32
	if bounds != nil {
		if bounds.From != nil {
			from = *bounds.From
		}
		if bounds.To != nil {
			to = *bounds.To
		}
	}
	return &rangeDTO{From: &from, To: &to}
}

func (dto filterDTO) toDomain() domain.Filter {
	return domain.Filter{
		CountryID: dto.CountryID,
		RegionID:  dto.RegionID,
		Districts: dto.Districts,
		Types:     dto.Types,
		Rooms:     dto.Rooms,
		Agency:    dto.Agency,
		Area:      toDomainRange(dto.Area),
		Price:     toDomainRange(dto.Price),
	}
}

func toDomainRange(dto *rangeDTO) *domain.Range {
	if dto == nil {
		return nil
	}
	return &domain.Range{From: dto.From, To: dto.To}
}

func (r readAdvertsRequest) toDomain() domain.PageRequest {
	return domain.PageRequest{
		AdvertID:   r.AdvertID,
		Direction:  domain.LoadDirection(r.Direction),
		LastViewID: r.LastViewID,
	}
}

func toDistrictsResponse(districts []domain.District) []districtResponse {
	response := make([]districtResponse, 0, len(districts))
	for _, district := range districts {
		response = append(response, districtResponse{
			ID:       district.ID,
			Name:     district.Name,
			RegionID: district.RegionID,
		})
	}
	return response
}

func toFilesResponse(files []domain.File) []fileResponse {
	response := make([]fileResponse, 0, len(files))
	for _, file := range files {
		response = append(response, fileResponse{
			ID:        file.ID,
			Name:      file.Name,
			Type:      file.Type,
			Base64:    file.Base64,
			CreatedAt: file.CreatedAt,
		})
	}
	return response
}

func toPartnerAdvertsResponse(regionID int, adverts []domain.PartnerAdvert) partnerAdvertsResponseData {
	items := make([]partnerAdvertResponse, 0, len(adverts))
	for _, advert := range adverts {
		items = append(items, partnerAdvertResponse{
			ID:            advert.ID,
			PartnerID:     advert.PartnerID,
			PartnerName:   advert.PartnerName,
			PartnerTypeID: advert.PartnerTypeID,
			BannerID:      advert.BannerID,
			RegionID:      advert.RegionID,
			Endpoint:      advert.Endpoint,
			Meta:          advert.Meta,
			CreatedAt:     advert.CreatedAt,
		})
	}
	return partnerAdvertsResponseData{RegionID: regionID, Adverts: items}
}

func (r sendPartnerLeadRequest) toDomain() domain.Lead {
	return domain.Lead{
		PartnerAdvertID: r.PartnerAdvertID,
		Code:            r.Code,
		Phone:           r.Phone,
		Rooms:           r.Rooms,
		Name:            r.Name,
		Description:     r.Description,
		AddressIn:       r.AddressIn,
		AddressOut:      r.AddressOut,
	}
}
