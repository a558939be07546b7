// Package auth verifies user credentials and issues signed bearer tokens.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/repository"
	"github.com/talonbank/ledger/pkg/utils"
)

// tokenIssuer is the iss claim stamped on every token.
const tokenIssuer = "self"

// dummyHash is compared against when the user does not exist, so a missing
// user costs the same as a wrong password.
const dummyHash = "$2a$14$WnW9NDOYLfkCtTH9DXXsUuMQcTLVSUZnmHDXBXC0MEXICc3M11ccW"

// Service authenticates users against stored credentials and issues
// HS256-signed, time-bounded bearer tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Authenticate verifies a user id / password pair and returns a signed
// token on success. Unknown user and wrong password are deliberately
// indistinguishable: both fail with ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, userID, password string) (string, error) {
	log := s.logger.With("context", "Authenticate", "userID", userID)

	var u *domain.User
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		log.Error("credential lookup failed", "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
	}
	if u == nil {
		// Burn a bcrypt comparison anyway to keep timing flat.
		utils.CheckPasswordHash(password, dummyHash)
		log.Info("authentication failed")
		return "", domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		log.Info("authentication failed")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return "", err
	}
	log.Info("authentication successful")
	return token, nil
}

// IssueToken builds and signs a token whose subject is the user id. A
// missing signing secret aborts the request; a token is never truncated.
func (s *Service) IssueToken(subject string) (string, error) {
	if s.cfg.Secret == "" {
		return "", fmt.Errorf("%w: jwt signing secret is not configured", domain.ErrUnexpected)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("token signing failed", "error", err)
		return "", fmt.Errorf("%w: token signing failed", domain.ErrUnexpected)
	}
	return signed, nil
}
