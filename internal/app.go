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

	"real-estate-manager/internal/adapters/cache"
	logger_adapter "real-estate-manager/internal/adapters/logger"
	"real-estate-manager/internal/adapters/memory"
	postgres_adapter "real-estate-manager/internal/adapters/postgres"
	rabbitmq_adapter "real-estate-manager/internal/adapters/rabbitmq"
	"real-estate-manager/internal/adapters/redberry_api"
	"real-estate-manager/internal/adapters/rest"
	"real-estate-manager/internal/adapters/session_storage"
	"real-estate-manager/internal/configs"
	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/core/port"
	"real-estate-manager/internal/core/usecase"
	fluentlogger "real-estate-manager/pkg/fluent_logger"
	"real-estate-manager/pkg/postgres"
	"real-estate-manager/pkg/rabbitmq/rabbitmq_common"
	"real-estate-manager/pkg/rabbitmq/rabbitmq_producer"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	referenceCache *cache.ReferenceCache
	memoryStorage  *memory.BrowserStorage
	rabbitConn     *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher

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

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

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
	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- 3. ХРАНИЛИЩЕ СЕССИЙ ---
	var browserStorage port.BrowserStoragePort
	if appConfig.Database.URL != "" {
		dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		application.dbPool = dbPool
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		pgStorage := postgres_adapter.NewBrowserStorageAdapter(dbPool)
		if err := pgStorage.EnsureSchema(context.Background()); err != nil {
			appLogger.Error("Failed to prepare session storage table", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to prepare session storage: %w", err)
		}
		browserStorage = pgStorage
	} else {
		appLogger.Warn("DATABASE_URL is not set, session storage is kept in memory", nil)
		application.memoryStorage = memory.NewBrowserStorage()
		browserStorage = application.memoryStorage
	}
	filterStore := session_storage.NewFilterCriteriaStore(browserStorage)
	draftStore := session_storage.NewDraftStore(browserStorage)

	// --- 4. КЭШ СПРАВОЧНИКОВ ---
	var memcachedClient cache.MemcacheClient
	if appConfig.Cache.MemcachedHost != "" {
		memcachedClient = memcache.New(appConfig.Cache.MemcachedHost)
		appLogger.Info("Memcached reference cache enabled", port.Fields{"host": appConfig.Cache.MemcachedHost})
	}
	application.referenceCache = cache.NewReferenceCache(memcachedClient)
	cacheTTL := time.Duration(appConfig.Cache.TTLSeconds) * time.Second

	// --- 5. УДАЛЕННЫЙ API ---
	apiClient := redberry_api.NewRealEstateAPIClient(
		appConfig.RemoteAPI.URL,
		appConfig.RemoteAPI.Token,
		redberry_api.WithTimeout(time.Duration(appConfig.RemoteAPI.TimeoutSeconds)*time.Second),
	)

	// --- 6. СОБЫТИЯ ---
	var events port.DomainEventsPort = rabbitmq_adapter.NoopEventsPublisher{}
	if appConfig.RabbitMQ.URL != "" {
		rmqLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL}, rmqLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		application.rabbitConn = connManager

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			ExchangeName:             appConfig.RabbitMQ.EventsExchange,
			ExchangeType:             constants.ListingEventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rmqLogger,
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create events publisher", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create events publisher: %w", err)
		}
		application.eventsProducer = producer

		eventsAdapter, err := rabbitmq_adapter.NewDomainEventsAdapter(producer)
		if err != nil {
			application.closeResources()
			return nil, err
		}
		events = eventsAdapter
		appLogger.Info("Domain events will be published", port.Fields{"exchange": appConfig.RabbitMQ.EventsExchange})
	} else {
		appLogger.Warn("RABBITMQ_URL is not set, domain events are not published", nil)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 7. USE CASES ---
	getRegionsUseCase := usecase.NewGetRegionsUseCase(apiClient, application.referenceCache, cacheTTL)
	getCitiesUseCase := usecase.NewGetCitiesUseCase(apiClient, application.referenceCache, cacheTTL)
	getAgentsUseCase := usecase.NewGetAgentsUseCase(apiClient)
	listListingsUseCase := usecase.NewListListingsUseCase(apiClient, filterStore)
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(apiClient)
	createListingUseCase := usecase.NewCreateListingUseCase(apiClient, draftStore, events)
	createAgentUseCase := usecase.NewCreateAgentUseCase(apiClient, draftStore, events)
	deleteListingUseCase := usecase.NewDeleteListingUseCase(apiClient, events)
	filterCriteriaUseCase := usecase.NewFilterCriteriaUseCase(filterStore)
	draftsUseCase := usecase.NewDraftsUseCase(draftStore)

	// --- 8. REST API ---
	handlers := rest.Handlers{
		Reference: rest.NewReferenceHandler(getRegionsUseCase, getCitiesUseCase),
		Agents:    rest.NewAgentsHandler(getAgentsUseCase, createAgentUseCase),
		Listings: rest.NewListingsHandler(
			listListingsUseCase,
			getListingDetailsUseCase,
			createListingUseCase,
			deleteListingUseCase,
			getRegionsUseCase,
		),
		Filters: rest.NewFiltersHandler(filterCriteriaUseCase, getRegionsUseCase),
		Drafts:  rest.NewDraftsHandler(draftsUseCase),
	}
	application.apiServer = rest.NewServer(appConfig.Rest.PORT, handlers, appConfig.Rest.CORSAllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}

		a.closeResources()
		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// fluent может быть уже недоступен
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		runErr = err
	}

	cancelApp()
	return runErr
}

// closeResources освобождает подключения; вызывается и при ошибке сборки приложения.
func (a *App) closeResources() {
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing events publisher", err, nil)
		}
		a.eventsProducer = nil
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.rabbitConn = nil
	}
	if a.referenceCache != nil {
		a.referenceCache.Stop()
		a.referenceCache = nil
	}
	if a.memoryStorage != nil {
		a.memoryStorage.Stop()
		a.memoryStorage = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
		a.dbPool = nil
	}
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
