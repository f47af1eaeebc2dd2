package postgres_adapter

import (
	"context"
	"fmt"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SystemRepository - служебные запросы к базе данных.
type SystemRepository struct {
	pool *pgxpool.Pool
}

func NewSystemRepository(pool *pgxpool.Pool) (*SystemRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SystemRepository{
		pool: pool,
	}, nil
}

// Version возвращает версию сервера базы данных.
func (r *SystemRepository) Version(ctx context.Context) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SystemRepository",
		"method":    "Version",
	})

	query := `SELECT VERSION()`

	repoLogger.Debug("Executing query to read database version.", nil)
	var version string
	if err := r.pool.QueryRow(ctx, query).Scan(&version); err != nil {
		repoLogger.Error("Failed to read database version", err, port.Fields{"query": query})
		return "", fmt.Errorf("failed to read database version: %w", err)
	}

	repoLogger.Debug("Database version read successfully.", port.Fields{"version": version})
	return version, nil
}
