package postgres_adapter

import (
	"context"
	"errors" // Нужен для сравнения ошибок
	"fmt"

	"mobile-api-service/internal/contextkeys"
	"mobile-api-service/internal/core/domain"
	"mobile-api-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
// Вся работа с пользователями идет через хранимые функции базы.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{
		pool: pool,
	}, nil
}

// Register создает нового пользователя устройства.
func (r *UserRepository) Register(ctx context.Context, uniqueID uuid.UUID, firebaseToken string, platform, buildNumber int) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Register",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT id, unique_id, platform, build_number, created_at, updated_at FROM obj_users_register2($1, $2, $3, $4)`

	repoLogger.Debug("Executing query to register user.", nil)
	var user domain.User
	err := r.pool.QueryRow(ctx, query, uniqueID, firebaseToken, platform, buildNumber).Scan(
		&user.ID,
		&user.UniqueID,
		&user.Platform,
		&user.BuildNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to register user", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	repoLogger.Debug("User registered successfully.", port.Fields{"user_id": user.ID})
	return &user, nil
}

// GetByUniqueID находит пользователя по GUID устройства.
// Возвращает domain.ErrUserNotFound, если пользователя нет.
func (r *UserRepository) GetByUniqueID(ctx context.Context, uniqueID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "GetByUniqueID",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT id, unique_id, platform, build_number, created_at, updated_at FROM obj_users_get($1)`

	repoLogger.Debug("Executing query to find user.", nil)
	var user domain.User
	err := r.pool.QueryRow(ctx, query, uniqueID).Scan(
		&user.ID,
		&user.UniqueID,
		&user.Platform,
		&user.BuildNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		// pgx.ErrNoRows - это специальная ошибка, которую возвращает Scan,
		// если запрос не вернул ни одной строки.
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("User not found by unique id.", nil)
			return nil, domain.ErrUserNotFound
		}
		repoLogger.Error("Failed to find user", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	repoLogger.Debug("User found.", port.Fields{"user_id": user.ID})
	return &user, nil
}

// SaveDeviceInfo обновляет платформу и номер сборки приложения.
func (r *UserRepository) SaveDeviceInfo(ctx context.Context, uniqueID uuid.UUID, platform, buildNumber int) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":    "UserRepository",
		"method":       "SaveDeviceInfo",
		"unique_id":    uniqueID.String(),
		"platform":     platform,
		"build_number": buildNumber,
	})

	query := `SELECT id, unique_id, platform, build_number, created_at, updated_at FROM obj_users_save_device_info($1, $2, $3)`

	repoLogger.Debug("Executing query to save device info.", nil)
	var user domain.User
	err := r.pool.QueryRow(ctx, query, uniqueID, platform, buildNumber).Scan(
		&user.ID,
		&user.UniqueID,
		&user.Platform,
		&user.BuildNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("User not found by unique id.", nil)
			return nil, domain.ErrUserNotFound
		}
		repoLogger.Error("Failed to save device info", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to save device info: %w", err)
	}

	repoLogger.Debug("Device info saved successfully.", port.Fields{"user_id": user.ID})
	return &user, nil
}

// SaveFirebaseToken привязывает push-токен к пользователю.
func (r *UserRepository) SaveFirebaseToken(ctx context.Context, uniqueID uuid.UUID, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "SaveFirebaseToken",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT id FROM obj_firebase_tokens_add($1, $2)`

	repoLogger.Debug("Executing query to save firebase token.", nil)
	var tokenID int64
	err := r.pool.QueryRow(ctx, query, uniqueID, token).Scan(&tokenID)
	if err != nil {
		repoLogger.Error("Failed to save firebase token", err, port.Fields{"query": query})
		return fmt.Errorf("failed to save firebase token: %w", err)
	}

	repoLogger.Debug("Firebase token saved successfully.", port.Fields{"token_id": tokenID})
	return nil
}

// ResetPaginationState сбрасывает состояние пагинации ленты к началу.
func (r *UserRepository) ResetPaginationState(ctx context.Context, uniqueID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "ResetPaginationState",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT obj_users_pagination_state_upsert($1, $2, $3)`

	repoLogger.Debug("Executing query to reset pagination state.", nil)
	_, err := r.pool.Exec(ctx, query, uniqueID, 0, 0)
	if err != nil {
		repoLogger.Error("Failed to reset pagination state", err, port.Fields{"query": query})
		return fmt.Errorf("failed to reset pagination state: %w", err)
	}

	repoLogger.Debug("Pagination state reset successfully.", nil)
	return nil
}
