package fakeapi

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lyrapkg/lyra/internal/fakeapi/config"
	"github.com/lyrapkg/lyra/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// App runs a Server until the process is signalled.
type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

// NewApp builds the store, optionally seeds it and wires the server.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	store := NewStore(0)
	if cfg.Seed {
		demo, err := Seed(store)
		if err != nil {
			return nil, err
		}
		logger.Info(context.Background(), "seeded demo data", "user_id", demo.ID, "email", demo.Email)
	}

	srv := New(Config{Secret: []byte(cfg.SecretKey), TokenTTL: cfg.TokenTTL}, store, logger)
	return &App{config: cfg, logger: logger, server: srv}, nil
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives, then shuts down.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "listening", "addr", app.config.Addr)
		errCh <- app.server.Listen(app.config.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
