package port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// DictionaryRepositoryPort определяет контракт для справочников регионов и районов.
type DictionaryRepositoryPort interface {
	// LoadDistricts возвращает все районы.
	LoadDistricts(ctx context.Context) ([]domain.District, error)

	// LoadRegions возвращает все регионы.
	LoadRegions(ctx context.Context) ([]domain.Region, error)

	// GetRegion возвращает регион по идентификатору или nil, если его нет.
	GetRegion(ctx context.Context, id int) (*domain.Region, error)
}
