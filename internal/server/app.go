// Package server initializes and runs the registration server. It
// resolves configuration, opens the selected storage backend, runs
// migrations, and serves the HTTP API until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dpetrovs/userreg/internal/cryptox"
	"github.com/dpetrovs/userreg/internal/logging"
	"github.com/dpetrovs/userreg/internal/server/config"
	"github.com/dpetrovs/userreg/internal/server/httpapi"
	"github.com/dpetrovs/userreg/internal/server/shared/db"
	"github.com/dpetrovs/userreg/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	userService *users.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON()

	if requested := cfg.DatabaseType; !cfg.NormalizeBackend() {
		logger.Warn(ctx, "unknown database type, falling back to sqlite", "requested", requested)
	}

	manager, err := db.NewRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(manager.Users(), cryptox.NewArgon2idHasher(), logger)

	return &App{config: cfg, logger: logger, manager: manager, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := httpapi.NewHandler(app.userService, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddr, h, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...",
		"addr", app.config.EndpointAddr, "backend", app.config.DatabaseType)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
