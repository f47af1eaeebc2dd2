package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadPartnerAdvertsUseCase struct {
	filterRepo  port.FilterRepositoryPort
	partnerRepo port.PartnerAdvertRepositoryPort
}

func NewReadPartnerAdvertsUseCase(filterRepo port.FilterRepositoryPort, partnerRepo port.PartnerAdvertRepositoryPort) *ReadPartnerAdvertsUseCase {
	return &ReadPartnerAdvertsUseCase{
		filterRepo:  filterRepo,
		partnerRepo: partnerRepo,
	}
}

// Execute возвращает регион пользователя и рекламу партнеров для него.
func (uc *ReadPartnerAdvertsUseCase) Execute(ctx context.Context, userID uuid.UUID) (int, []domain.PartnerAdvert, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadPartnerAdverts",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	// Регион берем из сохраненного фильтра, подбор рекламы делает база.
	filter, err := uc.filterRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read filter", err, nil)
		return 0, nil, err
	}

	adverts, err := uc.partnerRepo.ListForUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read partner adverts", err, nil)
		return 0, nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"adverts": len(adverts)})
	return filter.RegionID, adverts, nil
}
