package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveDeviceInfoUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewSaveDeviceInfoUseCase(userRepo port.UserRepositoryPort) *SaveDeviceInfoUseCase {
	return &SaveDeviceInfoUseCase{userRepo: userRepo}
}

func (uc *SaveDeviceInfoUseCase) Execute(ctx context.Context, userID uuid.UUID, platform, buildNumber int) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "SaveDeviceInfo",
		"user_id":      userID,
		"platform":     platform,
		"build_number": buildNumber,
	})

	ucLogger.Info("Use case started", nil)

	if platform == 0 {
		return nil, domain.NewValidationError("Platform is required")
	}
	if buildNumber == 0 {
		return nil, domain.NewValidationError("Build number is required")
	}

	user, err := uc.userRepo.SaveDeviceInfo(ctx, userID, platform, buildNumber)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
