package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadLatestAdvertsUseCasePort - интерфейс для use case чтения последних объявлений
// без фильтра. Доступен только служебному пользователю.
type ReadLatestAdvertsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Advert, error)
}
