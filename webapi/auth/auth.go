// Package auth exposes the public token issuance endpoint.
package auth

import (
	"github.com/gofiber/fiber/v2"

	authsvc "github.com/talonbank/ledger/pkg/service/auth"
	"github.com/talonbank/ledger/webapi/common"
)

// Routes mounts the auth endpoints. Token issuance is one of the two
// public endpoints; everything else requires a bearer token.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/v1/auth/token", Token(authSvc))
}

// Token authenticates a user id / password pair and returns a bearer token.
// @Summary Issue a bearer token
// @Description Authenticate with user id and password and receive a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /v1/auth/token [post]
func Token(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TokenRequest](c)
		if input == nil {
			return err
		}
		token, err := authSvc.Authenticate(c.Context(), input.UserID, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user credentials supplied", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Token issued", TokenResponse{Token: token})
	}
}
