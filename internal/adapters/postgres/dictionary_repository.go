package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DictionaryRepository - реализация DictionaryRepositoryPort для PostgreSQL.
// Справочники регионов и районов только читаются.
type DictionaryRepository struct {
	pool *pgxpool.Pool
}

func NewDictionaryRepository(pool *pgxpool.Pool) (*DictionaryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DictionaryRepository{
		pool: pool,
	}, nil
}

// LoadDistricts возвращает все районы.
func (r *DictionaryRepository) LoadDistricts(ctx context.Context) ([]domain.District, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "LoadDistricts",
	})

	query := `SELECT id, region_id, name FROM dic_region_districts_load()`

	repoLogger.Debug("Executing query to load districts.", nil)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query districts", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var district domain.District
		if err := rows.Scan(&district.ID, &district.RegionID, &district.Name); err != nil {
			repoLogger.Error("Failed to scan district row", err, nil)
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, district)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during districts iteration", err, nil)
		return nil, fmt.Errorf("error during districts iteration: %w", err)
	}

	repoLogger.Debug("Districts loaded successfully.", port.Fields{"districts_count": len(districts)})
	return districts, nil
}

// LoadRegions возвращает все регионы вместе с локализованными названиями.
func (r *DictionaryRepository) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "LoadRegions",
	})

	query := `SELECT id, name, names FROM dic_regions_load()`

	repoLogger.Debug("Executing query to load regions.", nil)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query regions", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []domain.Region
	for rows.Next() {
		var region domain.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Names); err != nil {
			repoLogger.Error("Failed to scan region row", err, nil)
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during regions iteration", err, nil)
		return nil, fmt.Errorf("error during regions iteration: %w", err)
	}

	repoLogger.Debug("Regions loaded successfully.", port.Fields{"regions_count": len(regions)})
	return regions, nil
}

// GetRegion возвращает регион по идентификатору.
// Возвращает (nil, nil), если региона нет.
func (r *DictionaryRepository) GetRegion(ctx context.Context, id int) (*domain.Region, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DictionaryRepository",
		"method":    "GetRegion",
		"region_id": id,
	})

	query := `SELECT id, name, names FROM dic_regions_get($1)`

	repoLogger.Debug("Executing query to find region.", nil)
	var region domain.Region
	err := r.pool.QueryRow(ctx, query, id).Scan(&region.ID, &region.Name, &region.Names)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Region not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find region", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find region: %w", err)
	}

	repoLogger.Debug("Region found.", nil)
	return &region, nil
}
