package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PartnerAdvertRepository - реализация PartnerAdvertRepositoryPort для PostgreSQL.
type PartnerAdvertRepository struct {
	pool *pgxpool.Pool
}

func NewPartnerAdvertRepository(pool *pgxpool.Pool) (*PartnerAdvertRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PartnerAdvertRepository{
		pool: pool,
	}, nil
}

// ListForUser возвращает активную рекламу партнеров для региона пользователя.
func (r *PartnerAdvertRepository) ListForUser(ctx context.Context, uniqueID uuid.UUID) ([]domain.PartnerAdvert, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PartnerAdvertRepository",
		"method":    "ListForUser",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT id, partner_id, partner_name, partner_type_id, banner_id, region_id, endpoint, meta, created_at
		FROM obj_partner_adverts_load2($1)`

	repoLogger.Debug("Executing query to load partner adverts.", nil)
	rows, err := r.pool.Query(ctx, query, uniqueID)
	if err != nil {
		repoLogger.Error("Failed to query partner adverts", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query partner adverts: %w", err)
	}
	defer rows.Close()

	var adverts []domain.PartnerAdvert
	for rows.Next() {
		var advert domain.PartnerAdvert
		err := rows.Scan(
			&advert.ID,
			&advert.PartnerID,
			&advert.PartnerName,
			&advert.PartnerTypeID,
			&advert.BannerID,
			&advert.RegionID,
			&advert.Endpoint,
			&advert.Meta,
			&advert.CreatedAt,
		)
		if err != nil {
			repoLogger.Error("Failed to scan partner advert row", err, nil)
			return nil, fmt.Errorf("failed to scan partner advert: %w", err)
		}
		adverts = append(adverts, advert)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during partner adverts iteration", err, nil)
		return nil, fmt.Errorf("error during partner adverts iteration: %w", err)
	}

	repoLogger.Debug("Partner adverts loaded successfully.", port.Fields{"adverts_count": len(adverts)})
	return adverts, nil
}

// GetByID возвращает рекламу партнера.
// Возвращает domain.ErrPartnerAdvertNotFound, если ее нет.
func (r *PartnerAdvertRepository) GetByID(ctx context.Context, id int64) (*domain.PartnerAdvert, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":         "PartnerAdvertRepository",
		"method":            "GetByID",
		"partner_advert_id": id,
	})

	query := `SELECT id, partner_id, partner_name, partner_type_id, banner_id, region_id, endpoint, meta, created_at
		FROM obj_partner_adverts_get($1)`

	repoLogger.Debug("Executing query to find partner advert.", nil)
	var advert domain.PartnerAdvert
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&advert.ID,
		&advert.PartnerID,
		&advert.PartnerName,
		&advert.PartnerTypeID,
		&advert.BannerID,
		&advert.RegionID,
		&advert.Endpoint,
		&advert.Meta,
		&advert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Partner advert not found.", nil)
			return nil, domain.ErrPartnerAdvertNotFound
		}
		repoLogger.Error("Failed to find partner advert", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find partner advert: %w", err)
	}

	repoLogger.Debug("Partner advert found.", nil)
	return &advert, nil
}
