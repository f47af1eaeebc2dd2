package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveNotificationFlagUseCase struct {
	settingsRepo port.SettingsRepositoryPort
	userRepo     port.UserRepositoryPort
}

func NewSaveNotificationFlagUseCase(settingsRepo port.SettingsRepositoryPort, userRepo port.UserRepositoryPort) *SaveNotificationFlagUseCase {
	return &SaveNotificationFlagUseCase{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

func (uc *SaveNotificationFlagUseCase) Execute(ctx context.Context, userID uuid.UUID, enabled bool) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveNotificationFlag",
		"user_id":  userID,
		"enabled":  enabled,
	})

	ucLogger.Info("Use case started", nil)

	settings, err := uc.settingsRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read settings", err, nil)
		return nil, err
	}

	settings.IsNotificationEnabled = enabled
	if _, err := uc.settingsRepo.Save(ctx, userID, *settings); err != nil {
		ucLogger.Error("Failed to save settings", err, nil)
		return nil, err
	}

	user, err := uc.userRepo.GetByUniqueID(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
