package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// RegisterUserUseCasePort - интерфейс для use case регистрации устройства.
type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, firebaseToken string, platform, buildNumber int) (*domain.User, error)
}
