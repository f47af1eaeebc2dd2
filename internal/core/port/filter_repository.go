package port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// FilterRepositoryPort определяет контракт для хранилища поисковых фильтров.
type FilterRepositoryPort interface {
	// Save сохраняет фильтр пользователя и возвращает сохраненное состояние.
	Save(ctx context.Context, uniqueID uuid.UUID, filter domain.Filter) (*domain.Filter, error)

	// Read возвращает текущий фильтр пользователя.
	Read(ctx context.Context, uniqueID uuid.UUID) (*domain.Filter, error)
}
