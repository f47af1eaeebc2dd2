package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadFilterUseCasePort - интерфейс для use case чтения поискового фильтра.
type ReadFilterUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Filter, error)
}
