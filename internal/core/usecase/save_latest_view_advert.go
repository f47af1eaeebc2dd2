package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveLatestViewAdvertUseCase struct {
	settingsRepo port.SettingsRepositoryPort
}

func NewSaveLatestViewAdvertUseCase(settingsRepo port.SettingsRepositoryPort) *SaveLatestViewAdvertUseCase {
	return &SaveLatestViewAdvertUseCase{settingsRepo: settingsRepo}
}

func (uc *SaveLatestViewAdvertUseCase) Execute(ctx context.Context, userID uuid.UUID, advertID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SaveLatestViewAdvert",
		"user_id":   userID,
		"advert_id": advertID,
	})

	ucLogger.Info("Use case started", nil)

	if advertID <= 0 {
		return domain.NewRequiredParameterError("AdvertId")
	}

	// Отметка просмотра живет в настройках: читаем, меняем только ее, сохраняем.
	settings, err := uc.settingsRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read settings", err, nil)
		return err
	}

	settings.LastViewID = &advertID
	if _, err := uc.settingsRepo.Save(ctx, userID, *settings); err != nil {
		ucLogger.Error("Failed to save settings", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
