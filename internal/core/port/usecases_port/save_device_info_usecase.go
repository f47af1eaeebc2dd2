package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// SaveDeviceInfoUseCasePort - интерфейс для use case обновления данных устройства.
type SaveDeviceInfoUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, platform, buildNumber int) (*domain.User, error)
}
