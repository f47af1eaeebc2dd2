package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadUpdateBannerUseCasePort - интерфейс для use case баннера обновления приложения.
type ReadUpdateBannerUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Advert, error)
}
