package postgres_adapter

import (
	"context"
	"fmt"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository - реализация FileRepositoryPort для PostgreSQL.
// Файлы хранятся в базе целиком, в base64.
type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) (*FileRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FileRepository{
		pool: pool,
	}, nil
}

// LoadByIDs возвращает файлы по списку идентификаторов.
// Отсутствующие идентификаторы молча пропускаются.
func (r *FileRepository) LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.File, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FileRepository",
		"method":    "LoadByIDs",
		"ids_count": len(ids),
	})

	query := `SELECT id, name, type, base64, created_at FROM obj_files_load($1)`

	repoLogger.Debug("Executing query to load files.", nil)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		repoLogger.Error("Failed to query files", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	files := make([]domain.File, 0, len(ids))
	for rows.Next() {
		var file domain.File
		if err := rows.Scan(&file.ID, &file.Name, &file.Type, &file.Base64, &file.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan file row", err, nil)
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during files iteration", err, nil)
		return nil, fmt.Errorf("error during files iteration: %w", err)
	}

	repoLogger.Debug("Files loaded successfully.", port.Fields{"files_count": len(files)})
	return files, nil
}
