package port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// SettingsRepositoryPort определяет контракт для хранилища настроек пользователя.
type SettingsRepositoryPort interface {
	// Read возвращает настройки пользователя.
	Read(ctx context.Context, uniqueID uuid.UUID) (*domain.UserSettings, error)

	// Save сохраняет настройки и возвращает их актуальное состояние.
	Save(ctx context.Context, uniqueID uuid.UUID, settings domain.UserSettings) (*domain.UserSettings, error)
}
