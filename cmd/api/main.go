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

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/config"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler"
	applicationHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/application"
	authHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/auth"
	communicationHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/communication"
	interviewHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/interview"
	matchingHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/matching"
	volunteeringHandler "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler/volunteering"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/middleware"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository/postgres"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/router"
	applicationService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/application"
	authService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/auth"
	communicationService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/communication"
	eventService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/event"
	interviewService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/interview"
	matchingService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/matching"
	volunteeringService "github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/volunteering"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/auth"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/clock"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/messaging/redis"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/metrics"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		RetryBackoff: cfg.Redis.RetryBackoff,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	applicationRepo := postgres.NewApplicationRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)
	userRepo := postgres.NewUserRepository(db)

	m := metrics.NewMetrics("volunteer", "api")
	clk := clock.System()

	eventSvc := eventService.NewService(outboxRepo, broker)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	hasher := security.NewBcryptHasher(security.DefaultCost)

	applicationSvc := applicationService.NewService(applicationRepo, eventSvc, clk, m)
	matchingSvc := matchingService.NewService(applicationRepo, clk, m)
	interviewSvc := interviewService.NewService(applicationRepo, eventSvc, clk)
	volunteeringSvc := volunteeringService.NewService(applicationRepo, eventSvc, clk, m)
	communicationSvc := communicationService.NewService(applicationRepo, eventSvc, clk)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler()
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		applicationHandler.NewHandler(applicationSvc),
		matchingHandler.NewHandler(matchingSvc),
		interviewHandler.NewHandler(interviewSvc),
		volunteeringHandler.NewHandler(volunteeringSvc),
		communicationHandler.NewHandler(communicationSvc),
		h,
		router.Config{
			RateLimit: rate.Limit(cfg.HTTP.RateLimit),
			RateBurst: cfg.HTTP.RateBurst,
			CacheTTL:  cfg.HTTP.CacheTTL,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
