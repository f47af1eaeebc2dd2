package domain

import (
	"time"

	"github.com/google/uuid"
)

// File - статический файл (баннер, изображение), отдаваемый приложению в base64.
type File struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Base64    string
	CreatedAt time.Time
}
