package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadAdvertsUseCasePort - интерфейс для use case чтения страницы ленты объявлений.
// Вторым значением возвращается число пропущенных объявлений.
type ReadAdvertsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, page domain.PageRequest) ([]domain.Advert, int, error)
}
