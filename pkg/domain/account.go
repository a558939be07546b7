package domain

import (
	"fmt"
	"time"

	"github.com/talonbank/ledger/pkg/money"
)

// SortCode is the fixed routing constant assigned to every account at
// creation.
const SortCode = "10-10-10"

// BankAccount is the aggregate the ledger revolves around. AccountNumber
// and UserID are immutable after creation; Balance only changes through
// Deposit and Withdraw.
type BankAccount struct {
	AccountNumber string
	UserID        string
	Name          string
	AccountType   string
	SortCode      string
	Balance       money.Money
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBankAccount opens an account with the fixed sort code, a zero balance
// and the ledger currency.
func NewBankAccount(accountNumber, userID, name, accountType string) *BankAccount {
	now := time.Now().UTC()
	return &BankAccount{
		AccountNumber: accountNumber,
		UserID:        userID,
		Name:          name,
		AccountType:   accountType,
		SortCode:      SortCode,
		Balance:       money.FromMinor(0),
		Currency:      money.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// OwnedBy reports whether the account belongs to the given user.
func (a *BankAccount) OwnedBy(userID string) bool {
	return a.UserID == userID
}

// Deposit adds a strictly positive amount to the balance.
func (a *BankAccount) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidDetails)
	}
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDetails, err)
	}
	a.Balance = balance
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Withdraw removes a strictly positive amount from the balance. The balance
// never goes negative: a withdrawal larger than the balance fails with
// ErrInsufficientFunds and leaves the account unchanged.
func (a *BankAccount) Withdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal amount must be positive", ErrInvalidDetails)
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	balance, err := a.Balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDetails, err)
	}
	a.Balance = balance
	a.UpdatedAt = time.Now().UTC()
	return nil
}
