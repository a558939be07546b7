package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/internal/fixtures"
	"github.com/talonbank/ledger/pkg/domain"
	authsvc "github.com/talonbank/ledger/pkg/service/auth"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return domain.NewUser("usr-1", "Test User", domain.Address{ID: "adr-1", Line1: "1 Test St", Town: "Testtown", County: "Testshire", Postcode: "TE5 7ST"}, "+447700900000", "test@example.com", string(hash))
}

func TestAuthenticate_Success(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	cfg := &config.Jwt{Secret: "secret", Expiry: 600 * time.Second}
	svc := authsvc.New(uow, cfg, newTestLogger())

	u := testUser(t, "password123")
	uow.Users.On("Get", mock.Anything, "usr-1").Return(u, nil).Once()

	token, err := svc.Authenticate(context.Background(), "usr-1", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "usr-1", claims.Subject)
	assert.Equal(t, "self", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 600*time.Second, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := authsvc.New(uow, &config.Jwt{Secret: "secret", Expiry: 600 * time.Second}, newTestLogger())

	uow.Users.On("Get", mock.Anything, "usr-999").Return(nil, nil).Once()

	_, err := svc.Authenticate(context.Background(), "usr-999", "password123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := authsvc.New(uow, &config.Jwt{Secret: "secret", Expiry: 600 * time.Second}, newTestLogger())

	u := testUser(t, "password123")
	uow.Users.On("Get", mock.Anything, "usr-1").Return(u, nil).Once()

	_, err := svc.Authenticate(context.Background(), "usr-1", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_LookupFailure(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := authsvc.New(uow, &config.Jwt{Secret: "secret", Expiry: 600 * time.Second}, newTestLogger())

	uow.Users.On("Get", mock.Anything, "usr-1").Return(nil, errors.New("connection refused")).Once()

	_, err := svc.Authenticate(context.Background(), "usr-1", "password123")
	require.ErrorIs(t, err, domain.ErrUnexpected)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIssueToken_MissingSecret(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := authsvc.New(uow, &config.Jwt{Expiry: 600 * time.Second}, newTestLogger())

	_, err := svc.IssueToken("usr-1")
	require.ErrorIs(t, err, domain.ErrUnexpected)
}
