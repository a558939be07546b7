package domain

import (
	"time"

	"github.com/talonbank/ledger/pkg/money"
)

// TransactionKind is the direction of a ledger transaction.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// ParseTransactionKind validates a wire-level transaction type. Anything
// other than the two known kinds fails with ErrNotAllowed.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", ErrNotAllowed
	}
}

// Transaction is an immutable ledger entry. Once created it is never
// updated or deleted; the account balance is a fold over these entries.
type Transaction struct {
	ID            string
	AccountNumber string
	Amount        money.Money
	Currency      string
	Kind          TransactionKind
	CreatedAt     time.Time
}

// NewTransaction records a movement against an account.
func NewTransaction(id, accountNumber string, amount money.Money, kind TransactionKind) *Transaction {
	return &Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		Amount:        amount,
		Currency:      money.Currency,
		Kind:          kind,
		CreatedAt:     time.Now().UTC(),
	}
}
