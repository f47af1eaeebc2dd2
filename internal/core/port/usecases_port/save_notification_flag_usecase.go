package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// SaveNotificationFlagUseCasePort - интерфейс для use case переключения уведомлений.
type SaveNotificationFlagUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, enabled bool) (*domain.User, error)
}
