package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type RegisterUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewRegisterUserUseCase(userRepo port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, firebaseToken string, platform, buildNumber int) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"platform": platform,
	})

	ucLogger.Info("Use case started", nil)

	// Приложение при сбое присылает строку "error" вместо настоящего токена.
	if firebaseToken == "" || firebaseToken == "error" {
		return nil, domain.NewValidationError("Invalid Firebase token")
	}

	// Новому устройству выдаем GUID, он же дальше служит токеном доступа.
	user, err := uc.userRepo.Register(ctx, uuid.New(), firebaseToken, platform, buildNumber)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"unique_id": user.UniqueID})
	return user, nil
}
