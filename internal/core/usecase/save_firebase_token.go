package usecase

import (
	"context"
	"strings"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveFirebaseTokenUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewSaveFirebaseTokenUseCase(userRepo port.UserRepositoryPort) *SaveFirebaseTokenUseCase {
	return &SaveFirebaseTokenUseCase{userRepo: userRepo}
}

func (uc *SaveFirebaseTokenUseCase) Execute(ctx context.Context, userID uuid.UUID, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveFirebaseToken",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if strings.TrimSpace(token) == "" {
		return domain.NewValidationError("Token is required")
	}

	if err := uc.userRepo.SaveFirebaseToken(ctx, userID, token); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
