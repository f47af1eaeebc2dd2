package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// ReadDistrictsUseCasePort - интерфейс для use case чтения справочника районов.
type ReadDistrictsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.District, error)
}
