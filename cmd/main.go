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

	cancelAppointmentHandler "github.com/lobeca/lobeca-web/internal/api/handlers/cancel_appointment"
	confirmBookingHandler "github.com/lobeca/lobeca-web/internal/api/handlers/confirm_booking"
	createWorkerAppointmentHandler "github.com/lobeca/lobeca-web/internal/api/handlers/create_worker_appointment"
	getAppointmentHandler "github.com/lobeca/lobeca-web/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/lobeca/lobeca-web/internal/api/handlers/get_available_slots"
	getCheckoutHandler "github.com/lobeca/lobeca-web/internal/api/handlers/get_checkout"
	getUserAppointmentsHandler "github.com/lobeca/lobeca-web/internal/api/handlers/get_user_appointments"
	getWizardHandler "github.com/lobeca/lobeca-web/internal/api/handlers/get_wizard"
	logoutHandler "github.com/lobeca/lobeca-web/internal/api/handlers/logout"
	navigateWizardHandler "github.com/lobeca/lobeca-web/internal/api/handlers/navigate_wizard"
	"github.com/lobeca/lobeca-web/internal/api/handlers/wizardpage"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/config"
	"github.com/lobeca/lobeca-web/internal/infra/cache"
	registrationStore "github.com/lobeca/lobeca-web/internal/infra/storage/registration"
	sessionRepo "github.com/lobeca/lobeca-web/internal/infra/storage/session"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	appointmentsService "github.com/lobeca/lobeca-web/internal/service/appointments"
	establishmentsService "github.com/lobeca/lobeca-web/internal/service/establishments"
	completeRegistrationUC "github.com/lobeca/lobeca-web/internal/usecase/complete_registration"
	confirmBookingUC "github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
	createWorkerAppointmentUC "github.com/lobeca/lobeca-web/internal/usecase/create_worker_appointment"
	getAvailableSlotsUC "github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
	loadWizardUC "github.com/lobeca/lobeca-web/internal/usecase/load_wizard"
	navigateWizardUC "github.com/lobeca/lobeca-web/internal/usecase/navigate_wizard"
	startRegistrationUC "github.com/lobeca/lobeca-web/internal/usecase/start_registration"
	"github.com/lobeca/lobeca-web/pkg/logger"
	"github.com/lobeca/lobeca-web/pkg/metrics"
	"github.com/lobeca/lobeca-web/pkg/ratelimit"
)

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

	log.Info("Starting lobeca-web...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Wizard.Location()
	if err != nil {
		log.Fatal("Failed to load time zone %q: %v", cfg.Wizard.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		cacheMetrics     cache.MetricsRecorder
		apiOptions       = []lobecaapi.Option{lobecaapi.WithLocation(location)}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		cacheMetrics = metricsCollector
		apiOptions = append(apiOptions, lobecaapi.WithMetrics(metricsCollector))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (сессии)
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

	// Подключаемся к redis (кэш запросов и ожидающие регистрации)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем клиента Lobeca API
	apiClient := lobecaapi.NewClient(
		cfg.LobecaAPI.URL,
		time.Duration(cfg.LobecaAPI.Timeout)*time.Second,
		cfg.LobecaAPI.ReadRetries,
		log,
		apiOptions...,
	)
	log.Info("Lobeca API client initialized (url=%s, timeout=%ds, read_retries=%d)",
		cfg.LobecaAPI.URL, cfg.LobecaAPI.Timeout, cfg.LobecaAPI.ReadRetries)

	// Инициализируем инфраструктуру
	queryCache := cache.New(rdb, time.Duration(cfg.Redis.CacheTTL)*time.Second, cacheMetrics, log)
	sessions := sessionRepo.NewRepository(db)
	registrations := registrationStore.NewStore(rdb, time.Duration(cfg.Redis.RegistrationTTL)*time.Second)
	otpLimiter := ratelimit.New(cfg.OTP.PerMinute, cfg.OTP.Burst)
	verifyLimiter := ratelimit.New(cfg.OTP.VerifyPerMinute, cfg.OTP.VerifyBurst)
	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(apiClient, queryCache, location, log)
	establishmentsSvc := establishmentsService.NewService(apiClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(apiClient, queryCache, location, log)
	navigateWizardUseCase := navigateWizardUC.NewUseCase(log)
	loadWizardUseCase := loadWizardUC.NewUseCase(
		apiClient,
		getAvailableSlotsUseCase,
		queryCache,
		loadWizardUC.Config{
			Location:       location,
			DaysShown:      cfg.Wizard.DaysShown,
			SelectionDelay: cfg.Wizard.SelectionDelay(),
		},
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(apiClient, queryCache, location, log)
	startRegistrationUseCase := startRegistrationUC.NewUseCase(
		apiClient,
		registrations,
		otpLimiter,
		cfg.OTP.DefaultRegion,
		log,
	)
	completeRegistrationUseCase := completeRegistrationUC.NewUseCase(
		apiClient,
		registrations,
		verifyLimiter,
		sessions,
		confirmBookingUseCase,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		log,
	)
	createWorkerAppointmentUseCase := createWorkerAppointmentUC.NewUseCase(
		apiClient,
		getAvailableSlotsUseCase,
		queryCache,
		location,
		log,
	)

	// Инициализируем handlers
	renderer := wizardpage.NewRenderer(loadWizardUseCase, log)
	getWizard := getWizardHandler.NewHandler(renderer, log)
	navigateWizard := navigateWizardHandler.NewHandler(navigateWizardUseCase, renderer, log)
	confirmBooking := confirmBookingHandler.NewHandler(
		confirmBookingUseCase,
		startRegistrationUseCase,
		completeRegistrationUseCase,
		renderer,
		cookie,
		log,
	)
	logout := logoutHandler.NewHandler(sessions, cookie, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createWorkerAppointment := createWorkerAppointmentHandler.NewHandler(createWorkerAppointmentUseCase, location, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCheckout := getCheckoutHandler.NewHandler(establishmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без сессии)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все остальные маршруты знают о сессии посетителя (если она есть)
	app := r.PathPrefix("").Subrouter()
	app.Use(middleware.Session(sessions, cookie, log))

	// ============================================================
	// МАСТЕР ЗАПИСИ (HTML + htmx)
	// ============================================================

	// Текущий шаг определяется query: serviceID, date, time, appointmentUUID
	app.HandleFunc("/book/{workerUUID}", getWizard.Handle).Methods(http.MethodGet)

	// Выбор услуги, дня или времени
	app.HandleFunc("/book/{workerUUID}/select", navigateWizard.Handle).Methods(http.MethodPost)

	// Шаг назад
	app.HandleFunc("/book/{workerUUID}/back", navigateWizard.HandleBack).Methods(http.MethodPost)

	// Подтверждение записи
	app.HandleFunc("/book/{workerUUID}/confirm", confirmBooking.HandleConfirm).Methods(http.MethodPost)

	// Регистрация по OTP перед подтверждением
	app.HandleFunc("/book/{workerUUID}/register", confirmBooking.HandleRegister).Methods(http.MethodPost)
	app.HandleFunc("/book/{workerUUID}/verify", confirmBooking.HandleVerify).Methods(http.MethodPost)

	app.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// JSON API
	// ============================================================

	api := app.PathPrefix("/api/v1").Subrouter()

	// Свободные слоты мастера на день
	api.HandleFunc("/workers/{workerUUID}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи клиента ---
	api.HandleFunc("/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentUUID}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentUUID}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Кабинет мастера ---
	// Запись клиента без онлайн-бронирования (walk-in)
	api.HandleFunc("/dashboard/appointments", createWorkerAppointment.Handle).Methods(http.MethodPost)

	// --- Подписка заведения ---
	api.HandleFunc("/establishments/{establishmentId}/checkout", getCheckout.Handle).Methods(http.MethodGet)

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
