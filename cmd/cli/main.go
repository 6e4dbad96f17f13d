package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/ledgeredge/infra/initializer"
	"github.com/amirasaad/ledgeredge/pkg/app"
	"github.com/amirasaad/ledgeredge/pkg/config"
	"github.com/amirasaad/ledgeredge/pkg/menu"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Logs go to stderr so they never interleave with the menu.
	logger := initializer.SetupLogger(cfg.Log, stderr)
	a := app.New(&app.Deps{Logger: logger}, cfg)

	a.Logger.Debug("Starting menu", "env", cfg.Env)
	m := menu.New(a.AccountService,
		menu.WithInput(stdin),
		menu.WithOutput(stdout),
		menu.WithErrorOutput(stderr),
		menu.WithLogger(a.Logger),
		menu.WithColor(cfg.CLI.ColorEnabled(isTerminal(stdout))),
		menu.WithBrand(cfg.CLI.Brand),
		menu.WithPrompt(cfg.CLI.Prompt),
	)
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
