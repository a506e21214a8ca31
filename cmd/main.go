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

	cancelbookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/cancel_booking"
	completebookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/complete_booking"
	createbookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/create_booking"
	getslotshandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/get_available_slots"
	getbookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/get_booking"
	getcustomerbookingshandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/get_customer_bookings"
	getshowroombookingshandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/get_showroom_bookings"
	holdslothandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/hold_slot"
	noshowbookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/no_show_booking"
	releaseholdhandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/release_hold"
	reschedulebookinghandler "github.com/m04kA/DTS-BookingService/internal/api/handlers/reschedule_booking"
	"github.com/m04kA/DTS-BookingService/internal/api/middleware"
	"github.com/m04kA/DTS-BookingService/internal/config"
	"github.com/m04kA/DTS-BookingService/internal/infra/reservation"
	bookingstorage "github.com/m04kA/DTS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/DTS-BookingService/internal/integrations/customerservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/showroomservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/vehicleservice"
	"github.com/m04kA/DTS-BookingService/internal/service/bookings"
	"github.com/m04kA/DTS-BookingService/internal/service/holds"
	"github.com/m04kA/DTS-BookingService/internal/service/slotlocks"
	createbookingusecase "github.com/m04kA/DTS-BookingService/internal/usecase/create_booking"
	getslotsusecase "github.com/m04kA/DTS-BookingService/internal/usecase/get_available_slots"
	holdslotusecase "github.com/m04kA/DTS-BookingService/internal/usecase/hold_slot"
	"github.com/m04kA/DTS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/DTS-BookingService/pkg/logger"
	"github.com/m04kA/DTS-BookingService/pkg/metrics"
	"github.com/m04kA/DTS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/DTS-BookingService/pkg/txmanager"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.Path, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// PostgreSQL
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("failed to ping database: %v", err)
	}
	log.Info("connected to database %s", cfg.Database.Name)

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to ping redis: %v", err)
	}
	log.Info("connected to redis %s", cfg.Redis.Addr)

	stopCh := make(chan struct{})
	defer close(stopCh)

	// Репозиторий и транзакции: с метриками или без - по конфигурации
	var (
		bookingRepo *bookingstorage.Repository
		txMgr       createbookingusecase.TxManager
		promMetrics *metrics.Metrics
	)

	if cfg.Metrics.Enabled {
		promMetrics = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB := dbmetrics.WrapWithDefault(db, promMetrics, cfg.Metrics.ServiceName, stopCh)
		bookingRepo = bookingstorage.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepo = bookingstorage.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Клиенты внешних сервисов
	showroomClient := showroomservice.NewClient(cfg.Integrations.ShowroomService.URL, cfg.Integrations.ShowroomService.Timeout(), log)
	staffClient := staffservice.NewClient(cfg.Integrations.StaffService.URL, cfg.Integrations.StaffService.Timeout(), log)
	vehicleClient := vehicleservice.NewClient(cfg.Integrations.VehicleService.URL, cfg.Integrations.VehicleService.Timeout(), log)
	customerClient := customerservice.NewClient(cfg.Integrations.CustomerService.URL, cfg.Integrations.CustomerService.Timeout(), log)
	notifyClient := notifyservice.NewClient(cfg.Integrations.NotifyService.URL, cfg.Integrations.NotifyService.Timeout(), log)

	// Эфемерные резервации: холды слотов и коммит-локи
	reservationStore := reservation.NewStore(redisClient)
	holdManager := holds.NewService(reservationStore, cfg.Booking.HoldTTL(), log)
	slotLocker := slotlocks.NewService(reservationStore, cfg.Booking.LockTTL(), log)

	// Usecases и сервисы
	slotConfig := getslotsusecase.SlotConfig{
		DurationMinutes: cfg.Booking.SlotDurationMinutes,
		BufferMinutes:   cfg.Booking.SlotBufferMinutes,
	}
	getSlotsUC := getslotsusecase.NewUsecase(bookingRepo, showroomClient, staffClient, holdManager, slotConfig, log)
	holdSlotUC := holdslotusecase.NewUsecase(getSlotsUC, holdManager, log)
	createBookingUC := createbookingusecase.NewUsecase(
		bookingRepo, txMgr, holdManager, slotLocker,
		customerClient, vehicleClient, staffClient, notifyClient,
		cfg.Booking.SlotDurationMinutes, log,
	)
	bookingService := bookings.NewService(bookingRepo, holdManager, vehicleClient, notifyClient, log)

	// Маршруты
	router := mux.NewRouter()
	router.Use(middleware.Logging(log))
	if promMetrics != nil {
		router.Use(middleware.Metrics(promMetrics))
		router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты: подбор слота и оформление брони
	api.Handle("/showrooms/{showroomId}/available-slots",
		http.HandlerFunc(getslotshandler.New(getSlotsUC, log).Handle)).Methods(http.MethodGet)
	api.Handle("/showrooms/{showroomId}/slot-holds",
		http.HandlerFunc(holdslothandler.New(holdSlotUC, log).Handle)).Methods(http.MethodPost)
	api.Handle("/slot-holds/{holdId}",
		http.HandlerFunc(releaseholdhandler.New(holdManager, log).Handle)).Methods(http.MethodDelete)
	api.Handle("/bookings",
		http.HandlerFunc(createbookinghandler.New(createBookingUC, log).Handle)).Methods(http.MethodPost)

	// Защищенные маршруты: требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.Handle("/bookings/{bookingId}",
		http.HandlerFunc(getbookinghandler.New(bookingService, log).Handle)).Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}/complete",
		http.HandlerFunc(completebookinghandler.New(bookingService, log).Handle)).Methods(http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/no-show",
		http.HandlerFunc(noshowbookinghandler.New(bookingService, log).Handle)).Methods(http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/cancel",
		http.HandlerFunc(cancelbookinghandler.New(bookingService, log).Handle)).Methods(http.MethodPatch)
	protected.Handle("/bookings/{bookingId}/reschedule",
		http.HandlerFunc(reschedulebookinghandler.New(bookingService, log).Handle)).Methods(http.MethodPatch)

	protected.Handle("/customers/{customerId}/bookings",
		http.HandlerFunc(getcustomerbookingshandler.New(bookingService, log).Handle)).Methods(http.MethodGet)
	protected.Handle("/showrooms/{showroomId}/bookings",
		http.HandlerFunc(getshowroombookingshandler.New(bookingService, log).Handle)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("starting server on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error: %v", err)
	}

	log.Info("server stopped")
}
