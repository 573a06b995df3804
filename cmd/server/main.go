package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/loan-tracker/internal/application"
	"github.com/eugenenazirov/loan-tracker/internal/config"
	"github.com/eugenenazirov/loan-tracker/internal/loans"
	"github.com/eugenenazirov/loan-tracker/internal/logging"
	"github.com/eugenenazirov/loan-tracker/internal/storage"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("loan-tracker", "Loan Tracker - loans, payments and payment status API")
	environment := kingpinApp.Flag("environment", "Configuration variant: development, production or testing").
		Short('e').Envar("APP_ENV").Default(config.Development).String()
	envFile := kingpinApp.Flag("env-file", "Path to a .env file loaded before settings are read").String()
	seedFile := kingpinApp.Flag("seed", "Path to a YAML file with loans to preload").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	settings, err := loadSettings(*environment, *envFile)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(settings.LogLevel, settings.Debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	seed, err := loadSeed(*seedFile)
	if err != nil {
		logger.Fatal("failed to load seed file", zap.String("path", *seedFile), zap.Error(err))
	}

	app, err := application.New(*environment, settings, logger, seed)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), settings.ShutdownGracePeriod, logger)
}

// loadSettings reads the environment once, resolves the requested variant
// and checks that it can start a server.
func loadSettings(environment, envFile string) (config.Settings, error) {
	if envFile != "" {
		if err := config.LoadDotEnv(envFile); err != nil {
			return config.Settings{}, err
		}
	}

	registry, err := config.NewRegistry()
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := registry.Resolve(environment)
	if err != nil {
		return config.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func loadSeed(path string) ([]loans.Loan, error) {
	if path == "" {
		return nil, nil
	}
	return storage.LoadSeed(path)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
