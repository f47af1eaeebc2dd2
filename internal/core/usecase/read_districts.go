package usecase

import (
	"context"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"
)

type ReadDistrictsUseCase struct {
	dictionaryRepo port.DictionaryRepositoryPort
}

func NewReadDistrictsUseCase(dictionaryRepo port.DictionaryRepositoryPort) *ReadDistrictsUseCase {
	return &ReadDistrictsUseCase{dictionaryRepo: dictionaryRepo}
}

func (uc *ReadDistrictsUseCase) Execute(ctx context.Context) ([]domain.District, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ReadDistricts"})

	ucLogger.Info("Use case started", nil)

	districts, err := uc.dictionaryRepo.LoadDistricts(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"districts": len(districts)})
	return districts, nil
}
