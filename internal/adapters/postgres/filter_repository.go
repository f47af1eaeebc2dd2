package postgres_adapter

import (
	"context"
	"fmt"
	"math"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Незаданные границы диапазонов хранятся в базе сторожевыми значениями,
// как их шлет мобильный клиент: 0 снизу и int.MaxValue сверху.
const (
	rangeUnsetLower = 0
	rangeUnsetUpper = math.MaxInt32
)

// FilterRepository - реализация FilterRepositoryPort для PostgreSQL.
type FilterRepository struct {
	pool *pgxpool.Pool
}

func NewFilterRepository(pool *pgxpool.Pool) (*FilterRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FilterRepository{
		pool: pool,
	}, nil
}

// Save сохраняет фильтр пользователя и возвращает сохраненное состояние.
func (r *FilterRepository) Save(ctx context.Context, uniqueID uuid.UUID, filter domain.Filter) (*domain.Filter, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FilterRepository",
		"method":    "Save",
		"unique_id": uniqueID.String(),
	})

	areaFrom, areaTo := rangeBounds(filter.Area)
	priceFrom, priceTo := rangeBounds(filter.Price)

	query := `SELECT country_id, region_id, districts, types, rooms, agency, area_from, area_to, price_from, price_to
		FROM obj_users_filter_save2($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	repoLogger.Debug("Executing query to save filter.", nil)
	row := r.pool.QueryRow(ctx, query,
		uniqueID,
		filter.CountryID,
		filter.RegionID,
		toInt32Slice(filter.Districts),
		toInt32Slice(filter.Types),
		toInt32Slice(filter.Rooms),
		filter.Agency,
		areaFrom,
		areaTo,
		priceFrom,
		priceTo,
	)

	saved, err := scanFilterRow(row)
	if err != nil {
		repoLogger.Error("Failed to save filter", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to save filter: %w", err)
	}

	repoLogger.Debug("Filter saved successfully.", nil)
	return saved, nil
}

// Read возвращает текущий фильтр пользователя.
func (r *FilterRepository) Read(ctx context.Context, uniqueID uuid.UUID) (*domain.Filter, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FilterRepository",
		"method":    "Read",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT country_id, region_id, districts, types, rooms, agency, area_from, area_to, price_from, price_to
		FROM obj_users_filter_get($1)`

	repoLogger.Debug("Executing query to read filter.", nil)
	filter, err := scanFilterRow(r.pool.QueryRow(ctx, query, uniqueID))
	if err != nil {
		repoLogger.Error("Failed to read filter", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to read filter: %w", err)
	}

	repoLogger.Debug("Filter read successfully.", nil)
	return filter, nil
}

func scanFilterRow(row pgx.Row) (*domain.Filter, error) {
	var (
		filter    domain.Filter
		districts []int32
		types     []int32
		rooms     []int32
		areaFrom  int
		areaTo    int
		priceFrom int
		priceTo   int
	)

	err := row.Scan(
		&filter.CountryID,
		&filter.RegionID,
		&districts,
		&types,
		&rooms,
		&filter.Agency,
		&areaFrom,
		&areaTo,
		&priceFrom,
		&priceTo,
	)
	if err != nil {
		return nil, err
	}

	filter.Districts = toIntSlice(districts)
	filter.Types = toIntSlice(types)
	filter.Rooms = toIntSlice(rooms)
	filter.Area = rangeFromBounds(areaFrom, areaTo)
	filter.Price = rangeFromBounds(priceFrom, priceTo)

	return &filter, nil
}

// rangeBounds разворачивает диапазон в пару значений для базы,
// незаданные границы заменяются сторожевыми.
func rangeBounds(r *domain.Range) (int, int) {
	from, to := rangeUnsetLower, rangeUnsetUpper
	if r != nil {
		if r.From != nil {
			from = *r.From
		}
		if r.To != nil {
			to = *r.To
		}
	}
	return from, to
}

// rangeFromBounds собирает диапазон из строки базы. Сторожевые значения
// превращаются обратно в незаданные границы, чтобы они не уходили
// во внешнее API как настоящие ограничения.
func rangeFromBounds(from, to int) *domain.Range {
	bounds := &domain.Range{}
	if from != rangeUnsetLower {
		bounds.From = &from
	}
	if to != rangeUnsetUpper {
		bounds.To = &to
	}
	if bounds.From == nil && bounds.To == nil {
		return nil
	}
	return bounds
}

// Хранимые функции принимают и возвращают int4[], для pgx это []int32.
func toInt32Slice(values []int) []int32 {
	result := make([]int32, len(values))
	for i, v := range values {
		result[i] = int32(v)
	}
	return result
}

func toIntSlice(values []int32) []int {
	result := make([]int, len(values))
	for i, v := range values {
		result[i] = int(v)
	}
	return result
}
