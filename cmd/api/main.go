package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commutesync/internal/api"
	"commutesync/internal/clock"
	"commutesync/internal/config"
	"commutesync/internal/metrics"
	"commutesync/internal/modules/logger"
	"commutesync/internal/modules/prediction"
	"commutesync/internal/modules/presets"
	"commutesync/internal/modules/routes"
	"commutesync/internal/modules/schedules"
	"commutesync/internal/modules/triplogs"
	"commutesync/internal/modules/users"
	"commutesync/pkg/email"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: could not load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: unable to create database pool: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("FATAL: unable to reach database: %v", err)
	}
	log.Println("Database connection established.")

	emailSender, err := email.NewSESV2Sender(ctx, cfg.AWSRegion, cfg.EmailFrom)
	if err != nil {
		log.Fatalf("FATAL: could not initialize email sender: %v", err)
	}
	templateManager, err := email.NewTemplateManager()
	if err != nil {
		log.Fatalf("FATAL: could not parse email templates: %v", err)
	}

	collector := metrics.NewCollector()

	// Repositories.
	userRepo := users.NewRepository(dbpool)
	routeRepo := routes.NewRepository(dbpool)
	tripLogRepo := triplogs.NewRepository(dbpool)
	scheduleRepo := schedules.NewRepository(dbpool)
	presetRepo := presets.NewRepository(dbpool)
	loggerRepo := logger.NewRepository(dbpool)

	// Services.
	userService := users.NewService(userRepo, emailSender, templateManager, cfg.JWTSecret, cfg.ClientOrigin, cfg.EnableRegistration)
	routeService := routes.NewService(routeRepo, tripLogRepo)
	tripLogService := triplogs.NewService(tripLogRepo, collector)
	scheduleService := schedules.NewService(scheduleRepo)
	presetService := presets.NewService(presetRepo)
	loggerService := logger.NewService(loggerRepo, tripLogRepo, logger.DefaultSyncPolicy, collector)
	predictionService := prediction.NewService(routeRepo, tripLogRepo, scheduleRepo, clock.RealClock{}, collector)

	// Handlers.
	userHandler := users.NewHandler(userService)
	routeHandler := routes.NewHandler(routeService)
	tripLogHandler := triplogs.NewHandler(tripLogService)
	scheduleHandler := schedules.NewHandler(scheduleService)
	presetHandler := presets.NewHandler(presetService)
	loggerHandler := logger.NewHandler(loggerService)
	predictionHandler := prediction.NewHandler(predictionService)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	api.SetupRoutes(
		e,
		cfg.JWTSecret,
		collector,
		userHandler,
		routeHandler,
		tripLogHandler,
		scheduleHandler,
		presetHandler,
		loggerHandler,
		predictionHandler,
	)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
