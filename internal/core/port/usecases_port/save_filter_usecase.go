package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// SaveFilterUseCasePort - интерфейс для use case сохранения поискового фильтра.
type SaveFilterUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, filter domain.Filter) (*domain.User, error)
}
