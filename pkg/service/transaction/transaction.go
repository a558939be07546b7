// Package transaction validates and applies deposits and withdrawals
// against an account balance, persisting the transaction and the updated
// balance as one unit.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/money"
	"github.com/talonbank/ledger/pkg/repository"

	accountsvc "github.com/talonbank/ledger/pkg/service/account"
)

// Service implements the transaction processor. It depends on the account
// service to resolve and authorize the target account before mutating it.
type Service struct {
	uow      repository.UnitOfWork
	accounts *accountsvc.Service
	logger   *slog.Logger
}

// New creates a transaction service.
func New(uow repository.UnitOfWork, accounts *accountsvc.Service, logger *slog.Logger) *Service {
	return &Service{uow: uow, accounts: accounts, logger: logger}
}

// CreateTransaction applies a deposit or withdrawal to the account. The
// balance update and the transaction row are written inside one UnitOfWork
// boundary with the account row locked, so the balance and the transaction
// history can never diverge and concurrent movements on the same account
// serialize. Rejected transactions leave both untouched.
func (s *Service) CreateTransaction(ctx context.Context, accountNumber string, amount float64, currency, kind, callerUserID string) (tx *domain.Transaction, err error) {
	log := s.logger.With("context", "CreateTransaction", "accountNumber", accountNumber)

	// Validation happens before any persistence is touched.
	m, err := money.New(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDetails, err)
	}
	if !m.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", domain.ErrInvalidDetails)
	}
	if currency != money.Currency {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrInvalidDetails, currency)
	}
	k, err := domain.ParseTransactionKind(kind)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := s.accounts.ResolveOwned(ctx, uow, accountNumber, callerUserID, true)
		if err != nil {
			return err
		}

		seqs, err := uow.Sequences()
		if err != nil {
			return err
		}
		raw, err := seqs.Next(ctx, domain.KindTransaction)
		if err != nil {
			return err
		}

		switch k {
		case domain.Deposit:
			err = acc.Deposit(m)
		case domain.Withdrawal:
			err = acc.Withdraw(m)
		}
		if err != nil {
			return err
		}

		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		balance := acc.Balance.Minor()
		if err := accounts.Update(ctx, acc.AccountNumber, dto.AccountUpdate{Balance: &balance}); err != nil {
			return err
		}

		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx = domain.NewTransaction(domain.FormatID(domain.KindTransaction, raw), acc.AccountNumber, m, k)
		return transactions.Create(ctx, tx)
	})
	if err != nil {
		log.Error("transaction rejected", "kind", kind, "error", err)
		return nil, err
	}
	log.Info("transaction applied", "transactionID", tx.ID, "kind", kind)
	return tx, nil
}

// GetTransaction fetches a single transaction scoped to an account the
// caller owns. An id belonging to a different account is indistinguishable
// from an absent one.
func (s *Service) GetTransaction(ctx context.Context, accountNumber, transactionID, callerUserID string) (tx *domain.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := s.accounts.ResolveOwned(ctx, uow, accountNumber, callerUserID, false)
		if err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = repo.GetByIDAndAccount(ctx, transactionID, acc.AccountNumber)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ListTransactions returns the account's transactions in creation order,
// after authorizing the caller against the account.
func (s *Service) ListTransactions(ctx context.Context, accountNumber, callerUserID string) (txs []*domain.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := s.accounts.ResolveOwned(ctx, uow, accountNumber, callerUserID, false)
		if err != nil {
			return err
		}
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = repo.ListByAccount(ctx, acc.AccountNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}
