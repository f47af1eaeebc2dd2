package port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// EmailSenderPort определяет контракт почтового провайдера.
type EmailSenderPort interface {
	// Send отправляет письмо. Ошибка означает, что провайдер не принял сообщение.
	Send(ctx context.Context, msg domain.EmailMessage) error
}
