package port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort определяет контракт для хранилища пользователей.
type UserRepositoryPort interface {
	// Register создает нового пользователя устройства.
	Register(ctx context.Context, uniqueID uuid.UUID, firebaseToken string, platform, buildNumber int) (*domain.User, error)

	// GetByUniqueID возвращает пользователя по GUID устройства.
	// Если пользователь не найден, возвращает domain.ErrUserNotFound.
	GetByUniqueID(ctx context.Context, uniqueID uuid.UUID) (*domain.User, error)

	// SaveDeviceInfo обновляет платформу и номер сборки приложения.
	SaveDeviceInfo(ctx context.Context, uniqueID uuid.UUID, platform, buildNumber int) (*domain.User, error)

	// SaveFirebaseToken привязывает push-токен к пользователю.
	SaveFirebaseToken(ctx context.Context, uniqueID uuid.UUID, token string) error

	// ResetPaginationState сбрасывает состояние пагинации ленты пользователя.
	ResetPaginationState(ctx context.Context, uniqueID uuid.UUID) error
}
