package constants

import "github.com/google/uuid"

// AdminUserID - служебный GUID, которому разрешены админские операции API.
var AdminUserID = uuid.MustParse("BA73FDEC-4028-403F-A110-12FB9B722D64")

// ContactEmail - адрес, на который уходят обращения из приложения
// и лиды партнеров без собственного эндпоинта.
const ContactEmail = "info@rentme.group"

// Баннер обновления приложения
const (
	UpdateBannerLink          = "https://rentme.onelink.me/3UJa/share"
	UpdateBannerImageTemplate = "https://rentme.group/images/update_%s.png"
)
