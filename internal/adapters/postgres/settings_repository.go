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

// SettingsRepository - реализация SettingsRepositoryPort для PostgreSQL.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) (*SettingsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SettingsRepository{
		pool: pool,
	}, nil
}

// Read возвращает настройки пользователя.
// Хранимая функция сама создает запись с настройками по умолчанию,
// поэтому отсутствие строки считается ошибкой базы.
func (r *SettingsRepository) Read(ctx context.Context, uniqueID uuid.UUID) (*domain.UserSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SettingsRepository",
		"method":    "Read",
		"unique_id": uniqueID.String(),
	})

	query := `SELECT latest_view_advert_id, is_notification_enabled, language_code, created_at, updated_at FROM obj_users_settings_read($1)`

	repoLogger.Debug("Executing query to read user settings.", nil)
	var settings domain.UserSettings
	err := r.pool.QueryRow(ctx, query, uniqueID).Scan(
		&settings.LastViewID,
		&settings.IsNotificationEnabled,
		&settings.LanguageCode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to read user settings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to read user settings: %w", err)
	}

	repoLogger.Debug("User settings read successfully.", nil)
	return &settings, nil
}

// Save сохраняет настройки и возвращает их актуальное состояние.
func (r *SettingsRepository) Save(ctx context.Context, uniqueID uuid.UUID, settings domain.UserSettings) (*domain.UserSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SettingsRepository",
		"method":    "Save",
		"unique_id": uniqueID.String(),
	})

	// Нулевой идентификатор просмотра хранится как NULL.
	var lastViewID *int64
	if settings.LastViewID != nil && *settings.LastViewID != 0 {
		lastViewID = settings.LastViewID
	}

	languageCode := settings.LanguageCode
	if languageCode == "" {
		languageCode = "pl"
	}

	query := `SELECT latest_view_advert_id, is_notification_enabled, language_code, created_at, updated_at FROM obj_users_settings_update($1, $2, $3, $4)`

	repoLogger.Debug("Executing query to save user settings.", nil)
	var saved domain.UserSettings
	err := r.pool.QueryRow(ctx, query, uniqueID, lastViewID, settings.IsNotificationEnabled, languageCode).Scan(
		&saved.LastViewID,
		&saved.IsNotificationEnabled,
		&saved.LanguageCode,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save user settings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to save user settings: %w", err)
	}

	repoLogger.Debug("User settings saved successfully.", nil)
	return &saved, nil
}
