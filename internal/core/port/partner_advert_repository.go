package port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// PartnerAdvertRepositoryPort определяет контракт для рекламы партнеров.
type PartnerAdvertRepositoryPort interface {
	// ListForUser возвращает объявления партнеров для региона пользователя.
	ListForUser(ctx context.Context, uniqueID uuid.UUID) ([]domain.PartnerAdvert, error)

	// GetByID возвращает объявление партнера.
	// Если объявления нет, возвращает domain.ErrPartnerAdvertNotFound.
	GetByID(ctx context.Context, id int64) (*domain.PartnerAdvert, error)
}
