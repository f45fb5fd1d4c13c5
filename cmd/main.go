package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	generateSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/generate_slots"
	getScheduleTemplateHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_schedule_template"
	getSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_slots"
	previewSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/preview_slots"
	saveSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/save_slots"
	updateScheduleTemplateHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/update_schedule_template"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/config"
	"github.com/m04kA/SMC-SlotService/internal/infra/cache/idempotency"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	templateRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/template"
	therapistServiceClient "github.com/m04kA/SMC-SlotService/internal/integrations/therapistservice"
	slotsService "github.com/m04kA/SMC-SlotService/internal/service/slots"
	templatesService "github.com/m04kA/SMC-SlotService/internal/service/templates"
	generateSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/generate_slots"
	previewSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/preview_slots"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
	"github.com/m04kA/SMC-SlotService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SlotService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики. nil коллектор безопасен: все методы Metrics проверяют получателя.
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Хранилище ключей идемпотентности (опционально)
	var idempotencyStore generateSlotsUC.IdempotencyStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, idempotency keys may be lost: %v", err)
		}
		cancel()

		idempotencyStore = idempotency.NewStore(redisClient, cfg.Redis.IdempotencyTTLDuration())
		log.Info("Idempotency store enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.IdempotencyTTLDuration())
	} else {
		log.Info("Idempotency store disabled, Idempotency-Key header is ignored")
	}

	// Интеграционные клиенты
	therapistClient := therapistServiceClient.NewClient(
		cfg.TherapistService.URL,
		time.Duration(cfg.TherapistService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (TherapistService=%s timeout=%ds)",
		cfg.TherapistService.URL, cfg.TherapistService.Timeout)

	// Репозитории
	slotRepository := slotRepo.NewRepository(wrappedDB)
	templateRepository := templateRepo.NewRepository(wrappedDB)

	// Сервисы
	slotsSvc := slotsService.NewService(slotRepository, txMgr, metricsCollector, log)
	templatesSvc := templatesService.NewService(templateRepository, therapistClient, log)

	// Use cases
	previewSlotsUseCase := previewSlotsUC.NewUseCase(templateRepository, metricsCollector, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		templateRepository,
		slotsSvc,
		therapistClient,
		idempotencyStore,
		metricsCollector,
		log,
	)

	// Handlers
	getSlots := getSlotsHandler.NewHandler(slotsSvc, log)
	saveSlots := saveSlotsHandler.NewHandler(slotsSvc, log)
	previewSlots := previewSlotsHandler.NewHandler(previewSlotsUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getScheduleTemplate := getScheduleTemplateHandler.NewHandler(templatesSvc, log)
	updateScheduleTemplate := updateScheduleTemplateHandler.NewHandler(templatesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь слотов ---
	api.HandleFunc("/therapists/{therapistId}/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/therapists/{therapistId}/slots", saveSlots.Handle).Methods(http.MethodPost)

	// --- Генерация по недельному расписанию ---
	api.HandleFunc("/therapists/{therapistId}/slots/preview", previewSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/therapists/{therapistId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// --- Шаблон расписания ---
	api.HandleFunc("/therapists/{therapistId}/schedule-template", getScheduleTemplate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/therapists/{therapistId}/schedule-template", updateScheduleTemplate.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
