package account

import (
	"time"

	"github.com/talonbank/ledger/pkg/domain"
)

// CreateAccountRequest is the request body for opening an account.
type CreateAccountRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	AccountType string `json:"accountType" validate:"required,oneof=personal savings"`
}

// UpdateAccountRequest is the request body for a partial account update.
// Only the display name and account type are mutable.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	AccountType *string `json:"accountType,omitempty" validate:"omitempty,oneof=personal savings"`
}

// CreateTransactionRequest is the request body for recording a movement.
type CreateTransactionRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Type     string  `json:"type" validate:"required"`
}

// AccountResponse is the account representation returned to clients.
// Balance is in major units.
type AccountResponse struct {
	AccountNumber    string    `json:"accountNumber"`
	SortCode         string    `json:"sortCode"`
	Name             string    `json:"name"`
	AccountType      string    `json:"accountType"`
	Balance          float64   `json:"balance"`
	Currency         string    `json:"currency"`
	CreatedTimestamp time.Time `json:"createdTimestamp"`
	UpdatedTimestamp time.Time `json:"updatedTimestamp"`
}

func toAccountResponse(a *domain.BankAccount) AccountResponse {
	return AccountResponse{
		AccountNumber:    a.AccountNumber,
		SortCode:         a.SortCode,
		Name:             a.Name,
		AccountType:      a.AccountType,
		Balance:          a.Balance.Float(),
		Currency:         a.Currency,
		CreatedTimestamp: a.CreatedAt,
		UpdatedTimestamp: a.UpdatedAt,
	}
}

func toAccountResponses(accounts []*domain.BankAccount) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

// TransactionResponse is the transaction representation returned to
// clients.
type TransactionResponse struct {
	ID               string    `json:"id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Type             string    `json:"type"`
	CreatedTimestamp time.Time `json:"createdTimestamp"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		Amount:           t.Amount.Float(),
		Currency:         t.Currency,
		Type:             string(t.Kind),
		CreatedTimestamp: t.CreatedAt,
	}
}

func toTransactionResponses(transactions []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
