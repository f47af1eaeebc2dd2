package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadSettingsUseCase struct {
	settingsRepo port.SettingsRepositoryPort
}

func NewReadSettingsUseCase(settingsRepo port.SettingsRepositoryPort) *ReadSettingsUseCase {
	return &ReadSettingsUseCase{settingsRepo: settingsRepo}
}

func (uc *ReadSettingsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadSettings",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	settings, err := uc.settingsRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return settings, nil
}
