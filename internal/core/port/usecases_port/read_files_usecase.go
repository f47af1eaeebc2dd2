package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// ReadFilesUseCasePort - интерфейс для use case чтения файлов по идентификаторам.
type ReadFilesUseCasePort interface {
	Execute(ctx context.Context, ids []uuid.UUID) ([]domain.File, error)
}
