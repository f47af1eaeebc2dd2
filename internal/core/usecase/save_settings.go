package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveSettingsUseCase struct {
	settingsRepo port.SettingsRepositoryPort
}

func NewSaveSettingsUseCase(settingsRepo port.SettingsRepositoryPort) *SaveSettingsUseCase {
	return &SaveSettingsUseCase{settingsRepo: settingsRepo}
}

func (uc *SaveSettingsUseCase) Execute(ctx context.Context, userID uuid.UUID, settings domain.UserSettings) (*domain.UserSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveSettings",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	saved, err := uc.settingsRepo.Save(ctx, userID, settings)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return saved, nil
}
