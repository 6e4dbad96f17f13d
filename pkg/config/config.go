package config

import (
	"time"
)

type Log struct {
	Level        string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error fatal"`
	Format       string `envconfig:"FORMAT" default:"text" validate:"oneof=json text logfmt"`
	TimeFormat   string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix       string `envconfig:"PREFIX" default:"[ledgeredge]"`
	ReportCaller bool   `envconfig:"REPORT_CALLER" default:"false"`
}

// CLI configures the interactive text menu.
type CLI struct {
	Color  string `envconfig:"COLOR" default:"auto" validate:"oneof=auto always never"`
	Brand  string `envconfig:"BRAND" default:"LedgerEdge" validate:"required"`
	Prompt string `envconfig:"PROMPT" default:"> "`
}

type Server struct {
	Host  string `envconfig:"HOST" default:"localhost"`
	Port  int    `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
	Owner string `envconfig:"OWNER" default:""`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100" validate:"min=1"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m" validate:"gt=0"`
}

type Metrics struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Path    string `envconfig:"ENDPOINT" default:"/metrics" validate:"startswith=/"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development" validate:"oneof=development test production"`
	Log       *Log       `envconfig:"LOG" validate:"required"`
	CLI       *CLI       `envconfig:"CLI" validate:"required"`
	Server    *Server    `envconfig:"SERVER" validate:"required"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT" validate:"required"`
	Metrics   *Metrics   `envconfig:"METRICS" validate:"required"`
}
