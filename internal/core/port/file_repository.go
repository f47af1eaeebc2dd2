package port

import (
	"context"

	"mobile-api-service/internal/core/domain"

	"github.com/google/uuid"
)

// FileRepositoryPort определяет контракт для хранилища файлов.
type FileRepositoryPort interface {
	// LoadByIDs возвращает файлы по списку идентификаторов.
	// Отсутствующие идентификаторы молча пропускаются.
	LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.File, error)
}
