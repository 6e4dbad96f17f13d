package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/ledgeredge/infra/initializer"
	"github.com/amirasaad/ledgeredge/pkg/app"
	"github.com/amirasaad/ledgeredge/pkg/config"
	"github.com/amirasaad/ledgeredge/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(&app.Deps{Logger: logger}, cfg)
	fiberApp, err := setup(ctx, a)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.Logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"metrics", cfg.Metrics.Enabled,
	)
	return serve(ctx, fiberApp, addr)
}

// setup opens the served account and builds the HTTP application around it.
func setup(ctx context.Context, a *app.App) (*fiber.App, error) {
	if _, err := a.AccountService.Open(ctx, a.Config.Server.Owner); err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}
	return webapi.SetupApp(a), nil
}

// serve listens on addr until ctx is done and then shuts the server down.
func serve(ctx context.Context, fiberApp *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
