package usecase

import (
	"context"
	"sort"

	"mobile-api-service/internal/constants"
	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadLatestAdvertsUseCase struct {
	listings port.ListingsProviderPort
}

func NewReadLatestAdvertsUseCase(listings port.ListingsProviderPort) *ReadLatestAdvertsUseCase {
	return &ReadLatestAdvertsUseCase{listings: listings}
}

// Execute возвращает последнюю страницу объявлений без фильтра.
// Операция служебная и доступна только админскому GUID.
func (uc *ReadLatestAdvertsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Advert, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadLatestAdverts",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if userID != constants.AdminUserID {
		ucLogger.Warn("Rejected non-admin access", nil)
		return nil, domain.ErrUnauthorized
	}

	page := domain.PageRequest{Direction: domain.DirectionLatest}
	adverts, err := uc.listings.FetchListings(ctx, nil, page)
	if err != nil {
		// Служебная выборка не должна падать из-за внешнего API.
		ucLogger.Warn("External API failed, returning empty list", port.Fields{"error": err.Error()})
		adverts = []domain.Advert{}
	}

	sort.Slice(adverts, func(i, j int) bool { return adverts[i].ID < adverts[j].ID })

	ucLogger.Info("Use case finished successfully", port.Fields{"adverts": len(adverts)})
	return adverts, nil
}
