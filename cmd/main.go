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

	addScheduleEntryHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/add_schedule_entry"
	bulkAssignScheduleHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/bulk_assign_schedule"
	cancelBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/cancel_booking"
	clearScheduleHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/clear_schedule"
	createBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_booking"
	getBookingsDateRangeHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_bookings_date_range"
	getMemberBookingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_member_bookings"
	getScheduleEntriesHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_schedule_entries"
	listSlotsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_slots"
	removeScheduleEntryHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/remove_schedule_entry"
	updateBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantServiceClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	memberServiceClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/memberservice"
	bookingsService "github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
	bulkAssignScheduleUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/bulk_assign_schedule"
	createBookingUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
	"github.com/m04kA/SMC-ConsultationService/pkg/metrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ConsultationService/pkg/txmanager"
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

	log.Info("Starting SMC-ConsultationService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем интеграционных клиентов
	consultantClient := consultantServiceClient.NewClient(
		cfg.ConsultantService.URL,
		time.Duration(cfg.ConsultantService.Timeout)*time.Second,
		log,
	)
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ConsultantService=%s timeout=%ds, MemberService=%s timeout=%ds)",
		cfg.ConsultantService.URL, cfg.ConsultantService.Timeout, cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		slotRepository     *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		memberClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		slotRepository,
		consultantClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		slotRepository,
		consultantClient,
		memberClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		slotRepository,
		consultantClient,
		log,
	)

	bulkAssignScheduleUseCase := bulkAssignScheduleUC.NewUseCase(
		scheduleRepository,
		slotRepository,
		consultantClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bulkAssignSchedule := bulkAssignScheduleHandler.NewHandler(bulkAssignScheduleUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getMemberBookings := getMemberBookingsHandler.NewHandler(bookingSvc, log)
	getBookingsDateRange := getBookingsDateRangeHandler.NewHandler(bookingSvc, log)
	addScheduleEntry := addScheduleEntryHandler.NewHandler(scheduleSvc, log)
	removeScheduleEntry := removeScheduleEntryHandler.NewHandler(scheduleSvc, log)
	clearSchedule := clearScheduleHandler.NewHandler(scheduleSvc, log)
	getScheduleEntries := getScheduleEntriesHandler.NewHandler(scheduleSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог слотов
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Полный шаблон расписания
	api.HandleFunc("/consultant-slots", getScheduleEntries.Handle).Methods(http.MethodGet)

	// Доступность: по дате (с вычетом бронирований) или по дню недели
	api.HandleFunc("/consultant-slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Шаблон расписания консультанта
	api.HandleFunc("/consultant-slots/consultant/{consultantId}",
		getScheduleEntries.HandleByConsultant).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Шаблон расписания ---
	// Назначение слота на день недели
	protected.HandleFunc("/consultant-slots", addScheduleEntry.Handle).Methods(http.MethodPost)

	// Массовое назначение слотов
	protected.HandleFunc("/consultant-slots/bulk", bulkAssignSchedule.Handle).Methods(http.MethodPost)

	// Полная очистка расписания консультанта
	protected.HandleFunc("/consultant-slots/consultant/{consultantId}/clear",
		clearSchedule.Handle).Methods(http.MethodDelete)

	// Удаление назначения
	protected.HandleFunc("/consultant-slots/{consultantId}/{slotId}/{dayOfWeek}",
		removeScheduleEntry.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования за период
	protected.HandleFunc("/bookings/date-range", getBookingsDateRange.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление статуса и/или заметок
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований участника
	protected.HandleFunc("/members/{memberId}/bookings", getMemberBookings.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
