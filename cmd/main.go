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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/complete_booking"
	createBlockHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/create_block"
	createBookingHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/delete_block"
	getAdminBookingsHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/get_booking"
	getRevenueStatsHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/get_revenue_stats"
	getUserBookingsHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/get_user_bookings"
	listBlocksHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/list_blocks"
	listServicesHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/list_services"
	loginHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/login"
	registerHandler "github.com/seuzara/barber-booking-service/internal/api/handlers/register"
	"github.com/seuzara/barber-booking-service/internal/api/middleware"
	"github.com/seuzara/barber-booking-service/internal/config"
	blockRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/block"
	bookingRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/service"
	userRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/user"
	authService "github.com/seuzara/barber-booking-service/internal/service/auth"
	blocksService "github.com/seuzara/barber-booking-service/internal/service/blocks"
	bookingsService "github.com/seuzara/barber-booking-service/internal/service/bookings"
	catalogService "github.com/seuzara/barber-booking-service/internal/service/catalog"
	createBookingUC "github.com/seuzara/barber-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/seuzara/barber-booking-service/internal/usecase/get_available_slots"
	getRevenueStatsUC "github.com/seuzara/barber-booking-service/internal/usecase/get_revenue_stats"
	"github.com/seuzara/barber-booking-service/migrations"
	"github.com/seuzara/barber-booking-service/pkg/dbmetrics"
	"github.com/seuzara/barber-booking-service/pkg/logger"
	"github.com/seuzara/barber-booking-service/pkg/metrics"
	"github.com/seuzara/barber-booking-service/pkg/simpletxmanager"
	"github.com/seuzara/barber-booking-service/pkg/txmanager"
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

	log.Info("Starting BarberBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Доменное расписание барбершопа
	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}
	log.Info("Schedule configured: open=%02d:00, close=%02d:00, slot=%dm, timezone=%s",
		schedule.OpenHour, schedule.CloseHour, schedule.SlotMinutes, schedule.Location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied successfully")

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		blockRepository   *blockRepo.Repository
		serviceRepository *serviceRepo.Repository
		userRepository    *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, schedule, log)
	blockSvc := blocksService.NewService(blockRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.BcryptCost,
		authService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		serviceRepository,
		txMgr,
		schedule,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockRepository,
		schedule,
		log,
	)
	getRevenueStatsUseCase := getRevenueStatsUC.NewUseCase(bookingRepository, schedule, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blockSvc, log)
	getRevenueStats := getRevenueStatsHandler.NewHandler(getRevenueStatsUseCase, log)

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

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Создание бронирования: гости по имени и телефону,
	// авторизованные клиенты по токену
	booking := api.PathPrefix("").Subrouter()
	booking.Use(middleware.OptionalAuth(authSvc, log))
	booking.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth(authSvc, log))

	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(authSvc, log))

	admin.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/blocks", listBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/blocks/{id}", deleteBlock.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/revenue", getRevenueStats.Handle).Methods(http.MethodGet)

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
