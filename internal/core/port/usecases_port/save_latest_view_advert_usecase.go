package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

// SaveLatestViewAdvertUseCasePort - интерфейс для use case отметки последнего просмотра.
type SaveLatestViewAdvertUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, advertID int64) error
}
