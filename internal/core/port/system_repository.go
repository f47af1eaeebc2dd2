package port

import "context"

// SystemRepositoryPort - служебные запросы к базе данных.
type SystemRepositoryPort interface {
	// Version возвращает версию сервера базы данных.
	Version(ctx context.Context) (string, error)
}
