package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bookingFlowHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/booking_flow"
	createBookingHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/create_booking"
	editBlocksHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/edit_blocks"
	getBookingHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/get_booking"
	getPageHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/get_page"
	invalidateCatalogHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/invalidate_catalog"
	locationHandler "github.com/m04kA/SMC-ProfileService/internal/api/handlers/location_from_coords"
	"github.com/m04kA/SMC-ProfileService/internal/api/middleware"
	"github.com/m04kA/SMC-ProfileService/internal/config"
	catalogCache "github.com/m04kA/SMC-ProfileService/internal/infra/cache/catalog"
	bookingRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ProfileService/internal/infra/storage/flowsession"
	catalogClient "github.com/m04kA/SMC-ProfileService/internal/integrations/catalog"
	bookingsService "github.com/m04kA/SMC-ProfileService/internal/service/bookings"
	bookingFlowUC "github.com/m04kA/SMC-ProfileService/internal/usecase/booking_flow"
	editBlocksUC "github.com/m04kA/SMC-ProfileService/internal/usecase/edit_blocks"
	getPageUC "github.com/m04kA/SMC-ProfileService/internal/usecase/get_page"
	"github.com/m04kA/SMC-ProfileService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
	"github.com/m04kA/SMC-ProfileService/pkg/metrics"
	"github.com/m04kA/SMC-ProfileService/pkg/txmanager"
)

// catalogSource общий интерфейс клиента каталога и его кэша
type catalogSource interface {
	bookingFlowUC.CatalogClient
	getPageUC.CatalogClient
}

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ProfileService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор безопасен для счётчиков.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и менеджер транзакций (с метриками или без)
	var (
		businessRepository *businessRepo.Repository
		bookingRepository  *bookingRepo.Repository
		txMgr              *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		businessRepository = businessRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		businessRepository = businessRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewSQLTransactionManager(db)
	}

	// Клиент каталога
	var catalog catalogSource = catalogClient.NewClient(
		cfg.Catalog.URL,
		cfg.Catalog.TimeoutDuration(),
		cfg.Catalog.RetryCount,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.Catalog.URL, cfg.Catalog.Timeout)

	// Redis: кэш каталога и хранилище сценариев записи
	var (
		sessions      bookingFlowUC.SessionStore
		cachedCatalog *catalogCache.CachedClient
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		cachedCatalog = catalogCache.NewCachedClient(catalog, redisClient, cfg.Redis.CatalogCacheTTLDuration(), metricsCollector, log)
		catalog = cachedCatalog
		sessions = flowsession.NewRedisStore(redisClient, cfg.Booking.FlowTTLDuration(), cfg.Booking.SubmitLockTTLDuration())
		log.Info("Redis connected (addr=%s): catalog cache ttl=%ds, flow sessions ttl=%ds",
			cfg.Redis.Addr, cfg.Redis.CatalogCacheTTL, cfg.Booking.FlowTTL)
	} else {
		sessions = flowsession.NewMemoryStore(cfg.Booking.FlowTTLDuration())
		log.Warn("Redis disabled: catalog is not cached, booking flows are kept in process memory")
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, metricsCollector, log)

	// Use cases
	getPageUseCase := getPageUC.NewUseCase(businessRepository, catalog, log)
	editBlocksUseCase := editBlocksUC.NewUseCase(businessRepository, txMgr, metricsCollector, log)
	bookingFlowUseCase := bookingFlowUC.NewUseCase(
		businessRepository,
		catalog,
		bookingSvc,
		sessions,
		metricsCollector,
		log,
	)

	// Handlers
	getPage := getPageHandler.NewHandler(getPageUseCase, log)
	editBlocks := editBlocksHandler.NewHandler(editBlocksUseCase, log)
	location := locationHandler.NewHandler(log)
	bookingFlow := bookingFlowHandler.NewHandler(bookingFlowUseCase, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Публичная страница бизнеса
	api.HandleFunc("/businesses/{businessId}/pages/{pageType}", getPage.Handle).Methods(http.MethodGet)

	// Сценарий записи
	api.HandleFunc("/businesses/{businessId}/booking-flows", bookingFlow.Start).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{flowId}", bookingFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-flows/{flowId}/events", bookingFlow.Dispatch).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{flowId}/calendar.ics", bookingFlow.CalendarICS).Methods(http.MethodGet)

	// Создание бронирования (Booking API)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Редактор блоков ---
	pagePath := "/businesses/{businessId}/pages/{pageType}"
	protected.HandleFunc(pagePath+"/blocks", editBlocks.AddBlock).Methods(http.MethodPost)
	protected.HandleFunc(pagePath+"/blocks/reorder", editBlocks.ReorderBlocks).Methods(http.MethodPost)
	protected.HandleFunc(pagePath+"/blocks/{blockId}", editBlocks.UpdateBlock).Methods(http.MethodPatch)
	protected.HandleFunc(pagePath+"/blocks/{blockId}", editBlocks.RemoveBlock).Methods(http.MethodDelete)
	protected.HandleFunc(pagePath+"/blocks/{blockId}/move", editBlocks.MoveBlock).Methods(http.MethodPost)
	protected.HandleFunc(pagePath+"/settings", editBlocks.UpdateSettings).Methods(http.MethodPut)
	protected.HandleFunc("/block-types", editBlocks.BlockTypes).Methods(http.MethodGet)

	// Ссылка на карту по геолокации браузера
	protected.HandleFunc("/location/from-coordinates", location.Handle).Methods(http.MethodPost)

	// Сброс кэша каталога (только при включённом Redis)
	if cachedCatalog != nil {
		invalidateCatalog := invalidateCatalogHandler.NewHandler(cachedCatalog, log)
		protected.HandleFunc("/businesses/{businessId}/catalog-cache", invalidateCatalog.Handle).Methods(http.MethodDelete)
	}

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
