package webapi

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/talonbank/ledger/app"
	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/internal/fixtures"

	"github.com/gofiber/fiber/v2"
)

// SetupTestApp builds a Fiber app over a mocked UnitOfWork, for handler
// tests. The rate limiter is configured generously so it never interferes.
func SetupTestApp(t *testing.T) (*fiber.App, *fixtures.MockUnitOfWork) {
	t.Helper()
	uow := fixtures.NewMockUnitOfWork(t)
	cfg := &config.AppConfig{
		Env: "test",
		Jwt: config.Jwt{Secret: "test-secret", Expiry: 600 * time.Second},
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	a := app.New(app.Deps{
		Uow:    uow,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return SetupApp(a), uow
}

// TestToken signs a bearer token for the given subject with the test
// secret used by SetupTestApp.
func TestToken(t *testing.T, subject string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "self",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}
