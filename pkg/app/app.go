package app

import (
	"log/slog"

	"github.com/amirasaad/ledgeredge/pkg/config"
	"github.com/amirasaad/ledgeredge/pkg/service/account"
	"github.com/google/uuid"
)

// Deps contains the infrastructure shared by the front ends.
type Deps struct {
	Logger *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	SessionID      string
	Logger         *slog.Logger
	AccountService *account.Service
}

// New wires the services for one session. Every log record of the session
// carries its session_id.
func New(deps *Deps, cfg *config.App) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessionID := uuid.NewString()
	logger = logger.With("session_id", sessionID)
	return &App{
		Deps:           deps,
		Config:         cfg,
		SessionID:      sessionID,
		Logger:         logger,
		AccountService: account.New(logger),
	}
}
