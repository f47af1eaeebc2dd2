package usecases_port

import "context"

// SendMessageUseCasePort - интерфейс для use case отправки обращения в поддержку.
type SendMessageUseCasePort interface {
	Execute(ctx context.Context, subject, message string) error
}
