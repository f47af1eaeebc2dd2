package domain

import "time"

// UserSettings - настройки пользователя приложения.
type UserSettings struct {
	// LastViewID - последнее просмотренное объявление, nil если еще не было.
	LastViewID            *int64
	IsNotificationEnabled bool
	LanguageCode          string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
