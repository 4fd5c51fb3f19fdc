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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_slots"
	getComposedWindowsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_composed_windows"
	getServiceWindowsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_service_windows"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	serviceCache "github.com/m04kA/SMC-ScheduleService/internal/infra/cache/service"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
	professionalRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ScheduleService/internal/service/materializer"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	getComposedWindowsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_composed_windows"
	getServiceWindowsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_service_windows"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

const healthCheckTimeout = 2 * time.Second

func main() {
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

	log.Info("Starting SMC-ScheduleService...")

	defaults, err := cfg.Scheduling.Defaults()
	if err != nil {
		log.Fatal("Invalid scheduling config: %v", err)
	}
	log.Info("Scheduling defaults: step=%dm, lead=%dm, timezone=%s, closing=%s, max_range=%dd",
		defaults.SlotStepMinutes, defaults.MinLeadMinutes, defaults.Timezone, defaults.ClosingTime, defaults.MaxRangeDays)

	// Инициализируем метрики (если включены)
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

	// Репозитории работают через обертку с метриками, если метрики включены
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	professionalRepository := professionalRepo.NewRepository(executor)
	availabilityRepository := availabilityRepo.NewRepository(executor)
	slotRepository := slotRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)

	// Кэш каталога услуг (Redis опционален: без него услуги читаются из БД)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, service cache disabled: %v", cfg.Redis.Addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			log.Info("Service cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
		cancel()
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	services := serviceCache.NewCache(serviceRepository, redisClient, cfg.Redis.TTL(), log)

	// Сервисы
	slotMaterializer := materializer.NewService(slotRepository, metricsCollector, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		professionalRepository,
		services,
		availabilityRepository,
		slotRepository,
		defaults,
		log,
	)

	getServiceWindowsUseCase := getServiceWindowsUC.NewUseCase(
		professionalRepository,
		services,
		availabilityRepository,
		slotRepository,
		slotMaterializer,
		metricsCollector,
		defaults,
		log,
	)

	getComposedWindowsUseCase := getComposedWindowsUC.NewUseCase(
		professionalRepository,
		services,
		availabilityRepository,
		slotRepository,
		metricsCollector,
		defaults,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServiceWindows := getServiceWindowsHandler.NewHandler(getServiceWindowsUseCase, log)
	getComposedWindows := getComposedWindowsHandler.NewHandler(getComposedWindowsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error("GET /health - database unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, handlers.ReasonInternal, "база данных недоступна")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты специалиста (сохраненные или сгенерированные)
	api.HandleFunc("/companies/{companyId}/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Окна записи на услугу с материализацией слотов
	api.HandleFunc("/companies/{companyId}/professionals/{professionalId}/service-windows",
		getServiceWindows.Handle).Methods(http.MethodGet)

	// Окна, собранные из сохраненных единичных слотов
	api.HandleFunc("/companies/{companyId}/professionals/{professionalId}/composed-windows",
		getComposedWindows.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
