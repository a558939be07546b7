// Package repository defines the persistence contracts consumed by the
// services. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
)

// UserRepository is durable storage for users and their embedded address.
// Lookup methods return (nil, nil) when the id does not resolve; services
// translate that to the appropriate sentinel.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, update dto.UserUpdate) error
	// Delete removes the user and its address in one operation.
	Delete(ctx context.Context, id string) error
}

// AccountRepository is durable storage for bank accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.BankAccount) error
	Get(ctx context.Context, accountNumber string) (*domain.BankAccount, error)
	// GetForUpdate fetches the account with a row-level write lock so that
	// concurrent balance mutations against the same account serialize.
	// Only meaningful inside a UnitOfWork.Do boundary.
	GetForUpdate(ctx context.Context, accountNumber string) (*domain.BankAccount, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error)
	ExistsByUser(ctx context.Context, userID string) (bool, error)
	Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error
	Delete(ctx context.Context, accountNumber string) error
}

// TransactionRepository is append-only storage for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	// GetByIDAndAccount looks a transaction up scoped to one account. An id
	// that belongs to a different account resolves to (nil, nil) exactly
	// like an absent one.
	GetByIDAndAccount(ctx context.Context, id, accountNumber string) (*domain.Transaction, error)
	// ListByAccount returns the account's transactions in creation order.
	ListByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error)
}

// Sequences hands out values from durable, strictly increasing per-kind
// counters. The increment is atomic: no two callers ever observe the same
// value for the same kind.
type Sequences interface {
	Next(ctx context.Context, kind domain.IDKind) (int64, error)
}
