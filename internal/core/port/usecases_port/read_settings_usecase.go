package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadSettingsUseCasePort - интерфейс для use case чтения настроек пользователя.
type ReadSettingsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}
