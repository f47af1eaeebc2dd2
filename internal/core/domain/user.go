package domain

import (
	"time"

	"github.com/google/uuid"
)

// User - зарегистрированное устройство мобильного приложения.
type User struct {
	ID          int64
	UniqueID    uuid.UUID // GUID устройства, он же токен доступа
	Platform    int
	BuildNumber int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
