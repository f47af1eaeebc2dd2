package usecase

import (
	"context"
	"sort"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadAdvertsUseCase struct {
	filterRepo port.FilterRepositoryPort
	listings   port.ListingsProviderPort
}

func NewReadAdvertsUseCase(filterRepo port.FilterRepositoryPort, listings port.ListingsProviderPort) *ReadAdvertsUseCase {
	return &ReadAdvertsUseCase{
		filterRepo: filterRepo,
		listings:   listings,
	}
}

// Execute возвращает страницу ленты и число пропущенных объявлений.
func (uc *ReadAdvertsUseCase) Execute(ctx context.Context, userID uuid.UUID, page domain.PageRequest) ([]domain.Advert, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ReadAdverts",
		"user_id":   userID,
		"direction": page.Direction,
	})

	ucLogger.Info("Use case started", nil)

	// Шаг 1: Лента строится по сохраненному фильтру пользователя.
	filter, err := uc.filterRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to read filter", err, nil)
		return nil, 0, err
	}

	// Шаг 2: Страница из внешнего API.
	adverts, err := uc.listings.FetchListings(ctx, filter, page)
	if err != nil {
		ucLogger.Error("Failed to fetch listings", err, nil)
		return nil, 0, err
	}

	// Приложение ожидает объявления в порядке возрастания id.
	sort.Slice(adverts, func(i, j int) bool { return adverts[i].ID < adverts[j].ID })

	// Шаг 3: Пропущенные считаем только при листании от якоря.
	missed := 0
	if page.Direction == domain.DirectionPrev || page.Direction == domain.DirectionNext {
		missed, err = uc.listings.FetchMissedCount(ctx, filter, page)
		if err != nil {
			ucLogger.Error("Failed to fetch missed count", err, nil)
			return nil, 0, err
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"adverts": len(adverts),
		"missed":  missed,
	})
	return adverts, missed, nil
}
