package repository

import "context"

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. All repositories obtained from the UnitOfWork passed to Do
// share the same database transaction, so a balance update and its
// transaction row commit or roll back together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back and nothing it wrote is observable.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (UserRepository, error)
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	Sequences() (Sequences, error)
}
