package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadPartnerAdvertsUseCasePort - интерфейс для use case чтения рекламы партнеров.
// Первым значением возвращается регион из фильтра пользователя.
type ReadPartnerAdvertsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (int, []domain.PartnerAdvert, error)
}
