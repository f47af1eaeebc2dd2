package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
)

type ReadFilterUseCase struct {
	filterRepo port.FilterRepositoryPort
}

func NewReadFilterUseCase(filterRepo port.FilterRepositoryPort) *ReadFilterUseCase {
	return &ReadFilterUseCase{filterRepo: filterRepo}
}

func (uc *ReadFilterUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Filter, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReadFilter",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	filter, err := uc.filterRepo.Read(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return filter, nil
}
