package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addSelectionServiceHandler "github.com/e6carspa/booking-platform/internal/api/handlers/add_selection_service"
	clearSelectionHandler "github.com/e6carspa/booking-platform/internal/api/handlers/clear_selection"
	completeBookingHandler "github.com/e6carspa/booking-platform/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/e6carspa/booking-platform/internal/api/handlers/confirm_booking"
	getAllBookingsHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_booking"
	getMechanicsHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_mechanics"
	getSelectionHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_selection"
	getServicesHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_services"
	getUserBookingsHandler "github.com/e6carspa/booking-platform/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/e6carspa/booking-platform/internal/api/handlers/login"
	registerHandler "github.com/e6carspa/booking-platform/internal/api/handlers/register"
	removeSelectionServiceHandler "github.com/e6carspa/booking-platform/internal/api/handlers/remove_selection_service"
	submitBookingHandler "github.com/e6carspa/booking-platform/internal/api/handlers/submit_booking"
	updateSelectionHandler "github.com/e6carspa/booking-platform/internal/api/handlers/update_selection"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
	"github.com/e6carspa/booking-platform/internal/auth"
	"github.com/e6carspa/booking-platform/internal/catalog"
	"github.com/e6carspa/booking-platform/internal/config"
	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/internal/infra/cache"
	"github.com/e6carspa/booking-platform/internal/infra/sessions"
	bookingRepo "github.com/e6carspa/booking-platform/internal/infra/storage/booking"
	userRepo "github.com/e6carspa/booking-platform/internal/infra/storage/user"
	authService "github.com/e6carspa/booking-platform/internal/service/auth"
	bookingsService "github.com/e6carspa/booking-platform/internal/service/bookings"
	selectionService "github.com/e6carspa/booking-platform/internal/service/selection"
	submitBookingUC "github.com/e6carspa/booking-platform/internal/usecase/submit_booking"
	"github.com/e6carspa/booking-platform/pkg/dbmetrics"
	"github.com/e6carspa/booking-platform/pkg/logger"
	"github.com/e6carspa/booking-platform/pkg/metrics"
	"github.com/e6carspa/booking-platform/pkg/simpletxmanager"
	"github.com/e6carspa/booking-platform/pkg/txmanager"
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

	log.Info("Starting booking-platform...")

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
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime.Duration)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		userRepository    *userRepo.Repository
		txMgr             bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Опциональный кэш бронирований
	var bookingCache bookingsService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		bookingCache = cache.New(redisClient, cfg.Redis.TTL.Duration)
		log.Info("Redis cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL.Duration)
	}

	// Статический каталог и in-memory черновики выбора
	serviceCatalog := catalog.New()
	selectionStore := sessions.New()

	// Токены и сервисы
	tokenManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration)

	authSvc, err := authService.NewService(
		userRepository,
		txMgr,
		tokenManager,
		cfg.Admin.Email,
		cfg.Admin.Password,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize auth service: %v", err)
	}

	selectionSvc := selectionService.NewService(selectionStore, serviceCatalog, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, bookingCache, log)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		selectionStore,
		bookingRepository,
		userRepository,
		serviceCatalog,
		txMgr,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getServices := getServicesHandler.NewHandler(serviceCatalog, log)
	getMechanics := getMechanicsHandler.NewHandler(serviceCatalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(serviceCatalog, log)
	getSelection := getSelectionHandler.NewHandler(selectionSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(selectionSvc, log)
	addSelectionService := addSelectionServiceHandler.NewHandler(selectionSvc, log)
	removeSelectionService := removeSelectionServiceHandler.NewHandler(selectionSvc, log)
	clearSelection := clearSelectionHandler.NewHandler(selectionSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты
	api.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/mechanics", getMechanics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/mechanics/{mechanicId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Маршруты, требующие bearer-токен
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// Маршруты клиента
	customer := protected.PathPrefix("").Subrouter()
	customer.Use(middleware.RequireRole(domain.RoleCustomer, log))

	// Черновик выбора
	customer.HandleFunc("/selection", getSelection.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/selection", updateSelection.Handle).Methods(http.MethodPatch)
	customer.HandleFunc("/selection", clearSelection.Handle).Methods(http.MethodDelete)
	customer.HandleFunc("/selection/services", addSelectionService.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/selection/services/{serviceId}", removeSelectionService.Handle).Methods(http.MethodDelete)

	// Бронирования клиента
	customer.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Просмотр бронирования доступен и клиенту, и администратору
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Маршруты администратора
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin, log))

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
