package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	dictionary_cache "mobile-api-service/internal/adapters/dictionary_cache"
	lead_gateway "mobile-api-service/internal/adapters/lead_gateway"
	listings_api_client "mobile-api-service/internal/adapters/listings_api_client"
	logger_adapter "mobile-api-service/internal/adapters/logger"
	postgres_adapter "mobile-api-service/internal/adapters/postgres"
	"mobile-api-service/internal/adapters/rest"
	sendgrid_client "mobile-api-service/internal/adapters/sendgrid_client"
	"mobile-api-service/internal/configs"
	"mobile-api-service/internal/core/port"
	"mobile-api-service/internal/core/usecase"
	"mobile-api-service/pkg/fluentlogger"
	"mobile-api-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	userRepo, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	settingsRepo, err := postgres_adapter.NewSettingsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}
	filterRepo, err := postgres_adapter.NewFilterRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create filter repository: %w", err)
	}
	dictionaryRepo, err := postgres_adapter.NewDictionaryRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create dictionary repository: %w", err)
	}
	fileRepo, err := postgres_adapter.NewFileRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create file repository: %w", err)
	}
	partnerRepo, err := postgres_adapter.NewPartnerAdvertRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create partner advert repository: %w", err)
	}
	systemRepo, err := postgres_adapter.NewSystemRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create system repository: %w", err)
	}

	// Кэши справочников и клиенты внешних сервисов.
	districtCache := dictionary_cache.NewDistrictNameCache(dictionaryRepo)
	regionCache := dictionary_cache.NewRegionNameCache(dictionaryRepo)

	listingsClient := listings_api_client.NewClient(
		appConfig.Listings.BaseURL,
		appConfig.Listings.Endpoint,
		time.Duration(appConfig.Listings.TimeoutSeconds)*time.Second,
		districtCache,
		regionCache,
	)
	emailSender := sendgrid_client.NewClient(appConfig.SendGrid.BaseURL, appConfig.SendGrid.APIKey)
	leadGateway := lead_gateway.NewClient()

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	registerUserUC := usecase.NewRegisterUserUseCase(userRepo)
	saveDeviceInfoUC := usecase.NewSaveDeviceInfoUseCase(userRepo)
	saveFirebaseTokenUC := usecase.NewSaveFirebaseTokenUseCase(userRepo)
	saveFilterUC := usecase.NewSaveFilterUseCase(filterRepo, userRepo)
	readFilterUC := usecase.NewReadFilterUseCase(filterRepo)
	readSettingsUC := usecase.NewReadSettingsUseCase(settingsRepo)
	saveSettingsUC := usecase.NewSaveSettingsUseCase(settingsRepo)
	saveLatestViewUC := usecase.NewSaveLatestViewAdvertUseCase(settingsRepo)
	saveNotificationFlagUC := usecase.NewSaveNotificationFlagUseCase(settingsRepo, userRepo)
	readAdvertsUC := usecase.NewReadAdvertsUseCase(filterRepo, listingsClient)
	readUpdateBannerUC := usecase.NewReadUpdateBannerUseCase(settingsRepo)
	readLatestAdvertsUC := usecase.NewReadLatestAdvertsUseCase(listingsClient)
	readDistrictsUC := usecase.NewReadDistrictsUseCase(dictionaryRepo)
	readFilesUC := usecase.NewReadFilesUseCase(fileRepo)
	readPartnerAdvertsUC := usecase.NewReadPartnerAdvertsUseCase(filterRepo, partnerRepo)
	sendPartnerLeadUC := usecase.NewSendPartnerLeadUseCase(partnerRepo, dictionaryRepo, leadGateway, emailSender)
	sendMessageUC := usecase.NewSendMessageUseCase(emailSender)

	// --- 5. REST API SERVER ---
	userHandler := rest.NewUserHandler(registerUserUC, saveDeviceInfoUC, saveFirebaseTokenUC)
	filterHandler := rest.NewFilterHandler(saveFilterUC, readFilterUC)
	settingsHandler := rest.NewSettingsHandler(readSettingsUC, saveSettingsUC, saveLatestViewUC, saveNotificationFlagUC)
	advertHandler := rest.NewAdvertHandler(readAdvertsUC, readUpdateBannerUC, readLatestAdvertsUC)
	dictionaryHandler := rest.NewDictionaryHandler(readDistrictsUC, readFilesUC)
	partnerHandler := rest.NewPartnerHandler(readPartnerAdvertsUC, sendPartnerLeadUC)
	messageHandler := rest.NewMessageHandler(sendMessageUC)
	publicHandler := rest.NewPublicHandler(systemRepo)

	serverCfg := rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		AppName:        appConfig.AppName,
		PublicToken:    appConfig.Auth.PublicToken,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}
	apiServer := rest.NewServer(serverCfg,
		userHandler, filterHandler, settingsHandler, advertHandler,
		dictionaryHandler, partnerHandler, messageHandler, publicHandler,
		baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
