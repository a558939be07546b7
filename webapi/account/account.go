// Package account exposes the bank account and transaction endpoints. All
// routes here require a bearer token.
package account

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/pkg/middleware"
	accountsvc "github.com/talonbank/ledger/pkg/service/account"
	transactionsvc "github.com/talonbank/ledger/pkg/service/transaction"
	"github.com/talonbank/ledger/webapi/common"
)

// accountNumberRe matches the externally visible account number format.
var accountNumberRe = regexp.MustCompile(`^01\d{6}$`)

// Routes mounts the account and nested transaction endpoints.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, transactionSvc *transactionsvc.Service, cfg *config.AppConfig) {
	protected := middleware.Protected(&cfg.Jwt)

	app.Post("/v1/accounts", protected, CreateAccount(accountSvc))
	app.Get("/v1/accounts", protected, ListAccounts(accountSvc))
	app.Get("/v1/accounts/:accountNumber", protected, GetAccount(accountSvc))
	app.Patch("/v1/accounts/:accountNumber", protected, UpdateAccount(accountSvc))
	app.Delete("/v1/accounts/:accountNumber", protected, DeleteAccount(accountSvc))

	app.Post("/v1/accounts/:accountNumber/transactions", protected, CreateTransaction(transactionSvc))
	app.Get("/v1/accounts/:accountNumber/transactions", protected, ListTransactions(transactionSvc))
	app.Get("/v1/accounts/:accountNumber/transactions/:transactionId", protected, GetTransaction(transactionSvc))
}

func accountNumberParam(c *fiber.Ctx) (string, bool) {
	accountNumber := c.Params("accountNumber")
	return accountNumber, accountNumberRe.MatchString(accountNumber)
}

// CreateAccount opens a new account for the authenticated user.
// @Summary Create a bank account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /v1/accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		acc, err := accountSvc.CreateAccount(c.Context(), caller, input.Name, input.AccountType)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountResponse(acc))
	}
}

// ListAccounts returns every account the authenticated user owns.
// @Summary List bank accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Router /v1/accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accounts, err := accountSvc.ListAccounts(c.Context(), caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", toAccountResponses(accounts))
	}
}

// GetAccount returns one account by number.
// @Summary Get bank account by account number
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		acc, err := accountSvc.GetAccount(c.Context(), accountNumber, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", toAccountResponse(acc))
	}
}

// UpdateAccount changes the account name or type.
// @Summary Update bank account
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param request body UpdateAccountRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [patch]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		acc, err := accountSvc.UpdateAccount(c.Context(), accountNumber, input.Name, input.AccountType, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", toAccountResponse(acc))
	}
}

// DeleteAccount removes an account.
// @Summary Delete bank account
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 204 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		if err := accountSvc.DeleteAccount(c.Context(), accountNumber, caller); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Account deleted", nil)
	}
}

// CreateTransaction applies a deposit or withdrawal to the account.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions [post]
// @Security Bearer
func CreateTransaction(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		tx, err := transactionSvc.CreateTransaction(c.Context(), accountNumber, input.Amount, input.Currency, input.Type, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", toTransactionResponse(tx))
	}
}

// ListTransactions returns the account's transactions in creation order.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions [get]
// @Security Bearer
func ListTransactions(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		transactions, err := transactionSvc.ListTransactions(c.Context(), accountNumber, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions found", toTransactionResponses(transactions))
	}
}

// GetTransaction returns one transaction scoped to the account.
// @Summary Get transaction by ID
// @Tags transactions
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions/{transactionId} [get]
// @Security Bearer
func GetTransaction(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		accountNumber, ok := accountNumberParam(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid details supplied", nil, "Invalid account number format", fiber.StatusBadRequest)
		}
		tx, err := transactionSvc.GetTransaction(c.Context(), accountNumber, c.Params("transactionId"), caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", toTransactionResponse(tx))
	}
}
