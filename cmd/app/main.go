package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"localweather.app/internal/adapters/infrastructure"
	"localweather.app/internal/app"
	apperrors "localweather.app/pkg/errors"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	logger := infrastructure.NewSlogLogger(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	slog.SetDefault(logger)

	// Create application with dependency injection
	application, err := app.NewApplication(app.DependencyOptions{})
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	app.LogConfig(logger, application.Config())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting LocalWeather...")
	startErr := application.Start(ctx)
	stop()

	// Give the application time to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
	}

	if startErr != nil && !errors.Is(startErr, context.Canceled) {
		slog.Error("Application stopped with error", "error", startErr)
		if apperrors.IsPermissionDeniedError(startErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
