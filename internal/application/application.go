package application

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/eugenenazirov/loan-tracker/internal/api"
	"github.com/eugenenazirov/loan-tracker/internal/config"
	"github.com/eugenenazirov/loan-tracker/internal/loans"
	"github.com/eugenenazirov/loan-tracker/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	environment string
	settings    config.Settings
	storage     *storage.MemoryStorage
	router      http.Handler
	logger      *zap.Logger
	server      *http.Server
}

// New initializes the application for the named configuration variant.
// seed, when non-empty, populates the loan store.
func New(environment string, settings config.Settings, logger *zap.Logger, seed []loans.Loan) (*App, error) {
	store := storage.NewMemoryStorage()
	if len(seed) > 0 {
		if err := store.Seed(seed); err != nil {
			return nil, fmt.Errorf("failed to apply seed loans: %w", err)
		}
	}

	handler := api.NewHandler(store, api.WithEnvironment(environment))
	router := api.NewRouter(handler, logger,
		api.WithLogging(!settings.Testing),
		api.WithIntrospection(settings.GraphiQLEnabled),
		api.WithDebug(settings.Debug),
		api.WithRateLimit(settings.RateLimitRPS, settings.RateLimitBurst),
	)

	return &App{
		environment: environment,
		settings:    settings,
		storage:     store,
		router:      router,
		logger:      logger,
		server:      NewServer(settings, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided settings.
func NewServer(settings config.Settings, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              settings.Address(),
		Handler:           handler,
		ReadHeaderTimeout: settings.ReadHeaderTimeout,
		WriteTimeout:      settings.WriteTimeout,
		IdleTimeout:       settings.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.String("environment", a.environment),
			zap.Bool("debug", a.settings.Debug),
			zap.Bool("introspection", a.settings.GraphiQLEnabled),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Storage returns the loan store backing the handlers.
func (a *App) Storage() storage.Storage {
	return a.storage
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
