// Package webapi wires the HTTP surface onto the assembled services.
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/talonbank/ledger/app"
	"github.com/talonbank/ledger/webapi/account"
	"github.com/talonbank/ledger/webapi/auth"
	"github.com/talonbank/ledger/webapi/common"
	"github.com/talonbank/ledger/webapi/user"
)

// SetupApp builds the Fiber app with all routes and middleware.
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Deps.Config

	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, status)
		},
	})

	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Prefer the proxy-provided client address when present.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", errors.New("rate limit exceeded"), fiber.StatusTooManyRequests)
		},
	}))
	fiberApp.Use(recover.New())
	if cfg.Env != "test" {
		fiberApp.Use(fiberlogger.New())
	}

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	auth.Routes(fiberApp, a.AuthService)
	user.Routes(fiberApp, a.UserService, cfg)
	account.Routes(fiberApp, a.AccountService, a.TransactionService, cfg)

	return fiberApp
}
