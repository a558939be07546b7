// Package middleware provides the JWT guard applied to every protected
// route and the helper that extracts the authenticated caller from it.
package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/pkg/domain"
)

// Protected verifies the bearer token signature with the shared HMAC
// secret and stores the parsed token in the request locals. Requests
// without a valid token never reach a handler.
func Protected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		status = fiber.StatusBadRequest
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"title":  "Unauthorized",
		"status": status,
		"detail": err.Error(),
	})
}

// CallerUserID extracts the token subject, which downstream services trust
// as the authenticated user identifier without re-verifying the signature.
func CallerUserID(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return "", errors.New("missing user context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrInvalidCredentials
	}
	return subject, nil
}
