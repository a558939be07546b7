// Package user exposes the user management endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/middleware"
	usersvc "github.com/talonbank/ledger/pkg/service/user"
	"github.com/talonbank/ledger/webapi/common"
)

// Routes mounts the user endpoints. Creation is public; everything else
// carries the JWT guard.
func Routes(app *fiber.App, userSvc *usersvc.Service, cfg *config.AppConfig) {
	app.Post("/v1/users", CreateUser(userSvc))
	app.Get("/v1/users/:userId", middleware.Protected(&cfg.Jwt), GetUser(userSvc))
	app.Patch("/v1/users/:userId", middleware.Protected(&cfg.Jwt), UpdateUser(userSvc))
	app.Delete("/v1/users/:userId", middleware.Protected(&cfg.Jwt), DeleteUser(userSvc))
}

// CreateUser registers a new user.
// @Summary Create a new user
// @Description Register a user with name, address, phone number, email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/users [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateUserRequest](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.Context(), usersvc.NewUserInput{
			Name: input.Name,
			Address: domain.Address{
				Line1:    input.Address.Line1,
				Line2:    input.Address.Line2,
				Line3:    input.Address.Line3,
				Town:     input.Address.Town,
				County:   input.Address.County,
				Postcode: input.Address.Postcode,
			},
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Password:    input.Password,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", toUserResponse(u))
	}
}

// GetUser returns the authenticated user's own record.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/users/{userId} [get]
// @Security Bearer
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		u, err := userSvc.GetUser(c.Context(), c.Params("userId"), caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", toUserResponse(u))
	}
}

// UpdateUser applies a partial update to the authenticated user's record.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/users/{userId} [patch]
// @Security Bearer
func UpdateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[UpdateUserRequest](c)
		if input == nil {
			return err
		}
		u, err := userSvc.UpdateUser(c.Context(), c.Params("userId"), input.toUpdate(), caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", toUserResponse(u))
	}
}

// DeleteUser removes the authenticated user's record. Deletion is blocked
// while the user still owns bank accounts.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 204 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /v1/users/{userId} [delete]
// @Security Bearer
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		if err := userSvc.DeleteUser(c.Context(), c.Params("userId"), caller); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "User deleted", nil)
	}
}
