package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// SaveSettingsUseCasePort - интерфейс для use case сохранения настроек пользователя.
type SaveSettingsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, settings domain.UserSettings) (*domain.UserSettings, error)
}
