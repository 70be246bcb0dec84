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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailabilityHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_availability"
	getFacilityInfoHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_facility_info"
	getOperatingHoursHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_operating_hours"
	getRentalGridHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_rental_grid"
	getResourcePackagesHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_resource_packages"
	getSnapshotHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/get_snapshot"
	listResourcesHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/list_resources"
	listSnapshotsHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/list_snapshots"
	purgeSnapshotsHandler "github.com/m04kA/SRF-AvailabilityService/internal/api/handlers/purge_snapshots"
	"github.com/m04kA/SRF-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SRF-AvailabilityService/internal/config"
	snapshotRepo "github.com/m04kA/SRF-AvailabilityService/internal/infra/storage/snapshot"
	bondsportsClient "github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
	facilitiesService "github.com/m04kA/SRF-AvailabilityService/internal/service/facilities"
	snapshotsService "github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots"
	getAvailabilityUC "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_availability"
	getRentalGridUC "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_rental_grid"
	"github.com/m04kA/SRF-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SRF-AvailabilityService/pkg/logger"
	"github.com/m04kA/SRF-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SRF-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SRF-AvailabilityService/pkg/txmanager"
)

func main() {
	// Подхватываем .env, если он есть - удобно для локальной разработки
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SRF-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента букинг-платформы
	var vendorMetrics bondsportsClient.MetricsRecorder
	if metricsCollector != nil {
		vendorMetrics = metricsCollector
	}
	client := bondsportsClient.NewClient(
		cfg.BondSports.BaseURL,
		time.Duration(cfg.BondSports.Timeout)*time.Second,
		log,
		vendorMetrics,
	)

	// Источник учетных данных: готовый токен сессии или логин по email/паролю
	var credsSource getAvailabilityUC.CredentialsSource
	switch {
	case cfg.BondSports.Token != "":
		credsSource = bondsportsClient.NewStaticCredentialsSource(cfg.BondSports.Token)
		log.Info("Using static session token for platform auth")
	case cfg.BondSports.Email != "":
		credsSource = bondsportsClient.NewLoginCredentialsSource(client, cfg.BondSports.Email, cfg.BondSports.Password)
		log.Info("Using email/password login for platform auth (email=%s)", cfg.BondSports.Email)
	default:
		credsSource = bondsportsClient.NewLoginCredentialsSource(client, "", "")
		log.Warn("No platform credentials in environment (%s or %s/%s) - availability endpoints will fail",
			config.EnvToken, config.EnvEmail, config.EnvPassword)
	}

	// Подключаемся к базе данных, только если включена история расчётов
	var (
		snapshotRepository *snapshotRepo.Repository
		snapshotSvc        *snapshotsService.Service
	)

	type txManagerIface interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr txManagerIface

	if cfg.Snapshots.Enabled {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			snapshotRepository = snapshotRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			snapshotRepository = snapshotRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

		snapshotSvc = snapshotsService.NewService(snapshotRepository, log)
	} else {
		log.Info("Snapshot history disabled - running without database")
	}

	// Инициализируем сервисы
	facilitiesSvc := facilitiesService.NewService(client, log)

	// Инициализируем use cases
	var getAvailabilityUseCase *getAvailabilityUC.UseCase
	if cfg.Snapshots.Enabled {
		getAvailabilityUseCase = getAvailabilityUC.NewUseCase(client, credsSource, snapshotRepository, txMgr, log)
	} else {
		getAvailabilityUseCase = getAvailabilityUC.NewUseCase(client, credsSource, nil, nil, log)
	}

	getRentalGridUseCase := getRentalGridUC.NewUseCase(client, credsSource, log)

	// Инициализируем handlers
	getFacilityInfo := getFacilityInfoHandler.NewHandler(facilitiesSvc, log)
	listResources := listResourcesHandler.NewHandler(facilitiesSvc, log)
	getOperatingHours := getOperatingHoursHandler.NewHandler(facilitiesSvc, log)
	getResourcePackages := getResourcePackagesHandler.NewHandler(facilitiesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getRentalGrid := getRentalGridHandler.NewHandler(getRentalGridUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (данные площадок и расчёт доступности)
	// ============================================================

	api.HandleFunc("/facilities/{facilityKey}", getFacilityInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityKey}/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityKey}/resources/{resourceId}/hours", getOperatingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityKey}/resources/{resourceId}/packages", getResourcePackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityKey}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityKey}/rental-grid", getRentalGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (история расчётов, требуют X-API-Key)
	// ============================================================

	if cfg.Snapshots.Enabled {
		getSnapshot := getSnapshotHandler.NewHandler(snapshotSvc, log)
		listSnapshots := listSnapshotsHandler.NewHandler(snapshotSvc, log)
		purgeSnapshots := purgeSnapshotsHandler.NewHandler(snapshotSvc, log)

		protected := api.PathPrefix("").Subrouter()
		protected.Use(middleware.APIKey(cfg.Auth.APIKey))

		protected.HandleFunc("/snapshots/{snapshotId}", getSnapshot.Handle).Methods(http.MethodGet)
		protected.HandleFunc("/facilities/{facilityKey}/snapshots", listSnapshots.Handle).Methods(http.MethodGet)
		protected.HandleFunc("/snapshots", purgeSnapshots.Handle).Methods(http.MethodDelete)

		log.Info("Snapshot history endpoints enabled")
	}

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
