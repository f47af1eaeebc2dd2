package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type SaveFilterUseCase struct {
	filterRepo port.FilterRepositoryPort
	userRepo   port.UserRepositoryPort
}

func NewSaveFilterUseCase(filterRepo port.FilterRepositoryPort, userRepo port.UserRepositoryPort) *SaveFilterUseCase {
	return &SaveFilterUseCase{
		filterRepo: filterRepo,
		userRepo:   userRepo,
	}
}

func (uc *SaveFilterUseCase) Execute(ctx context.Context, userID uuid.UUID, filter domain.Filter) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveFilter",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	// Шаг 1: Валидация фильтра.
	if err := validateFilter(filter); err != nil {
		ucLogger.Warn("Filter validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Шаг 2: Сохраняем фильтр.
	if _, err := uc.filterRepo.Save(ctx, userID, filter); err != nil {
		ucLogger.Error("Failed to save filter", err, nil)
		return nil, err
	}

	user, err := uc.userRepo.GetByUniqueID(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read user", err, nil)
		return nil, err
	}

	// Шаг 3: Новый фильтр обнуляет состояние пагинации ленты.
	if err := uc.userRepo.ResetPaginationState(ctx, userID); err != nil {
		ucLogger.Error("Failed to reset pagination state", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}

func validateFilter(filter domain.Filter) error {
	if filter.CountryID == 0 {
		return domain.NewValidationError("Country ID is required")
	}
	if filter.RegionID == 0 {
		return domain.NewValidationError("Region ID is required")
	}
	for _, district := range filter.Districts {
		if district < 0 {
			return domain.NewValidationError("Districts item value is invalid range")
		}
	}
	for _, typeID := range filter.Types {
		if typeID <= 0 {
			return domain.NewValidationError("Types item value is invalid range")
		}
	}
	for _, rooms := range filter.Rooms {
		if rooms <= 0 {
			return domain.NewValidationError("Rooms item value is invalid range")
		}
	}
	if filter.Area != nil && filter.Area.From != nil && *filter.Area.From < 0 {
		return domain.NewValidationError("Area.From is invalid range")
	}
	if filter.Price != nil {
		if filter.Price.From != nil && *filter.Price.From < 0 {
			return domain.NewValidationError("Price.From is invalid range")
		}
		if filter.Price.To != nil && *filter.Price.To < 0 {
			return domain.NewValidationError("Price.To is invalid range")
		}
	}
	return nil
}
