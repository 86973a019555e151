package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"gympulse/internal/config"
	"gympulse/internal/db"
	"gympulse/internal/email"
	"gympulse/internal/events"
	"gympulse/internal/logger"
	"gympulse/internal/server"
)

// @title GymPulse API
// @version 1.0
// @description Gym management backend: recipes, subscriptions, accounts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting GymPulse application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var emailService *email.Service
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("Redis unavailable, renewal emails disabled", "addr", cfg.RedisAddr)
		_ = rdb.Close()
	} else {
		emailService = email.New(rdb, cfg.EmailFrom, cfg.EmailFromName, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		defer emailService.Close()
		go emailService.Start(ctx)
		logger.Info("Email service initialized")
	}

	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = events.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.WithError(err).Warn("RabbitMQ unavailable, renewal events disabled")
		} else {
			defer publisher.Close()
			logger.Info("Event publisher connected")
		}
	}

	srv := server.New(database, cfg, emailService, publisher)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
