package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

// SaveFirebaseTokenUseCasePort - интерфейс для use case сохранения push-токена.
type SaveFirebaseTokenUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, token string) error
}
