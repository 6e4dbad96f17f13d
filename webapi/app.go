// Package webapi exposes the session account over HTTP.
package webapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/ledgeredge/pkg/app"
	"github.com/amirasaad/ledgeredge/pkg/config"
	"github.com/amirasaad/ledgeredge/pkg/service/account"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp builds the HTTP application for a session.
func SetupApp(a *app.App) *fiber.App {
	return newApp(a.AccountService, a.Config, a.Logger)
}

// NewApp builds the HTTP application serving svc.
func NewApp(svc *account.Service, cfg *config.App) *fiber.App {
	return newApp(svc, cfg, slog.Default())
}

func newApp(svc *account.Service, cfg *config.App, logger *slog.Logger) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName:               "ledgeredge",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return ProblemDetailsJSON(c, err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(accessLog(logger))
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LedgerEdge is running")
	})
	if cfg.Metrics.Enabled {
		fiberApp.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}
	AccountRoutes(fiberApp, svc)

	return fiberApp
}

// accessLog logs one record per request once the handler chain has finished.
func accessLog(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = ErrorToStatusCode(err)
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.UserContext(), level, "HTTP request",
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}
