package usecases_port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// SendPartnerLeadUseCasePort - интерфейс для use case отправки заявки партнеру.
// true означает, что заявка доставлена.
type SendPartnerLeadUseCasePort interface {
	Execute(ctx context.Context, lead domain.Lead) (bool, error)
}
