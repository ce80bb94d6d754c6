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

	cancelBookingHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_bookings"
	getSessionTypesHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_session_types"
	getTrainerHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_trainer"
	getWorkingHoursHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/get_working_hours"
	rescheduleBookingHandler "github.com/avpetrov/PT-BookingService/internal/api/handlers/reschedule_booking"
	"github.com/avpetrov/PT-BookingService/internal/api/middleware"
	"github.com/avpetrov/PT-BookingService/internal/app"
	"github.com/avpetrov/PT-BookingService/internal/config"
	bookingRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
	bookingsService "github.com/avpetrov/PT-BookingService/internal/service/bookings"
	catalogService "github.com/avpetrov/PT-BookingService/internal/service/catalog"
	createBookingUC "github.com/avpetrov/PT-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avpetrov/PT-BookingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/avpetrov/PT-BookingService/internal/usecase/reschedule_booking"
	"github.com/avpetrov/PT-BookingService/pkg/logger"
	"github.com/avpetrov/PT-BookingService/pkg/metrics"
	"github.com/avpetrov/PT-BookingService/pkg/txmanager"
)

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

	log.Info("Starting PT-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, schema version=%d", version)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Расписание с некорректными рабочими часами делает недоступным расчёт
	// слотов, поэтому проверяем его при старте и падаем сразу
	if err := validateSchedule(context.Background(), catalogRepository); err != nil {
		log.Fatal("Invalid trainer schedule: %v", err)
	}
	log.Info("Trainer schedule validated")

	// Запускаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBPool(db, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getTrainer := getTrainerHandler.NewHandler(catalogSvc, log)
	getSessionTypes := getSessionTypesHandler.NewHandler(catalogSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Профиль тренера, услуги и расписание
	api.HandleFunc("/trainer", getTrainer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session-types", getSessionTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Telegram-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

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

// validateSchedule проверяет корректность рабочих часов тренера при старте
func validateSchedule(ctx context.Context, repo *catalogRepo.Repository) error {
	workingHours, err := repo.ListWorkingHours(ctx)
	if err != nil {
		return fmt.Errorf("failed to load working hours: %w", err)
	}

	for _, wh := range workingHours {
		if err := wh.Validate(); err != nil {
			return fmt.Errorf("working hours for day_of_week=%d: %w", wh.DayOfWeek, err)
		}
	}

	return nil
}
