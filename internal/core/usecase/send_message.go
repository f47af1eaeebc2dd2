package usecase

import (
	"context"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

type SendMessageUseCase struct {
	emailSender port.EmailSenderPort
}

func NewSendMessageUseCase(emailSender port.EmailSenderPort) *SendMessageUseCase {
	return &SendMessageUseCase{emailSender: emailSender}
}

// Execute пересылает обращение пользователя на почту поддержки.
// Сбой доставки логируется, но не считается ошибкой сценария.
func (uc *SendMessageUseCase) Execute(ctx context.Context, subject, message string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SendMessage",
		"subject":  subject,
	})

	ucLogger.Info("Use case started", nil)

	msg := domain.EmailMessage{
		To:        constants.ContactEmail,
		Subject:   subject,
		PlainText: message,
	}
	if err := uc.emailSender.Send(ctx, msg); err != nil {
		ucLogger.Error("Failed to send contact message", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
