package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/appointmentsonthego/booking-api/config"
	authHandler "github.com/appointmentsonthego/booking-api/internal/handler/auth"
	businessHandler "github.com/appointmentsonthego/booking-api/internal/handler/business"
	customerHandler "github.com/appointmentsonthego/booking-api/internal/handler/customer"
	healthHandler "github.com/appointmentsonthego/booking-api/internal/handler/health"
	messageHandler "github.com/appointmentsonthego/booking-api/internal/handler/message"
	publicHandler "github.com/appointmentsonthego/booking-api/internal/handler/public"
	uploadHandler "github.com/appointmentsonthego/booking-api/internal/handler/upload"
	"github.com/appointmentsonthego/booking-api/internal/middleware"
	"github.com/appointmentsonthego/booking-api/internal/repository/postgres"
	"github.com/appointmentsonthego/booking-api/internal/router"
	appointmentService "github.com/appointmentsonthego/booking-api/internal/service/appointment"
	authService "github.com/appointmentsonthego/booking-api/internal/service/auth"
	availabilityService "github.com/appointmentsonthego/booking-api/internal/service/availability"
	catalogService "github.com/appointmentsonthego/booking-api/internal/service/catalog"
	directoryService "github.com/appointmentsonthego/booking-api/internal/service/directory"
	eventService "github.com/appointmentsonthego/booking-api/internal/service/event"
	messageService "github.com/appointmentsonthego/booking-api/internal/service/message"
	uploadService "github.com/appointmentsonthego/booking-api/internal/service/upload"
	"github.com/appointmentsonthego/booking-api/internal/storage"
	pkgauth "github.com/appointmentsonthego/booking-api/pkg/auth"
	"github.com/appointmentsonthego/booking-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	store, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize upload storage")
	}

	customerRepo := postgres.NewCustomerRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	timeSlotRepo := postgres.NewTimeSlotRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	jwtSvc := pkgauth.NewJWTService(pkgauth.Config{
		Secret:        cfg.JWT.Secret,
		DefaultExpiry: time.Duration(cfg.JWT.ExpiryMinutes) * time.Minute,
	})

	eventSvc := eventService.NewService(outboxRepo)
	authSvc := authService.NewService(customerRepo, businessRepo, jwtSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, businessRepo, eventSvc, appLogger)
	availabilitySvc := availabilityService.NewService(timeSlotRepo)
	catalogSvc := catalogService.NewService(serviceRepo)
	messageSvc := messageService.NewService(messageRepo, appointmentRepo)
	directorySvc := directoryService.NewService(businessRepo, timeSlotRepo, serviceRepo, appointmentRepo)
	uploadSvc := uploadService.NewService(businessRepo, store)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		customerHandler.NewHandler(authSvc, appointmentSvc),
		businessHandler.NewHandler(authSvc, appointmentSvc, availabilitySvc, catalogSvc),
		messageHandler.NewHandler(messageSvc),
		publicHandler.NewHandler(directorySvc),
		uploadHandler.NewHandler(uploadSvc),
		healthHandler.NewHandler(db),
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: "booking_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
