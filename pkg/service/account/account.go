// Package account owns bank account records and enforces that only the
// owning user may act on an account.
package account

import (
	"context"
	"log/slog"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/repository"
)

// Service implements the account ledger.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateAccount opens an account for the caller: a fresh account number
// from the durable sequence, the fixed sort code, a zero balance and the
// ledger currency.
func (s *Service) CreateAccount(ctx context.Context, callerUserID, name, accountType string) (acc *domain.BankAccount, err error) {
	log := s.logger.With("context", "CreateAccount", "userID", callerUserID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		seqs, err := uow.Sequences()
		if err != nil {
			return err
		}
		raw, err := seqs.Next(ctx, domain.KindAccount)
		if err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc = domain.NewBankAccount(domain.FormatID(domain.KindAccount, raw), callerUserID, name, accountType)
		return repo.Create(ctx, acc)
	})
	if err != nil {
		log.Error("account creation failed", "error", err)
		return nil, err
	}
	log.Info("account created", "accountNumber", acc.AccountNumber)
	return acc, nil
}

// GetAccount fetches an account the caller owns. Existence is checked
// before ownership, and an account owned by someone else fails with
// ErrNotAllowed without returning any of its data.
func (s *Service) GetAccount(ctx context.Context, accountNumber, callerUserID string) (acc *domain.BankAccount, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err = s.ResolveOwned(ctx, uow, accountNumber, callerUserID, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// ListAccounts returns every account owned by the caller. The query is
// scoped by the caller's own id, so no ownership check is needed.
func (s *Service) ListAccounts(ctx context.Context, callerUserID string) (accs []*domain.BankAccount, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accs, err = repo.ListByUser(ctx, callerUserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accs, nil
}

// UpdateAccount changes the display name and account type. Balance, owner,
// sort code, currency and account number are immutable through this path.
func (s *Service) UpdateAccount(ctx context.Context, accountNumber string, name, accountType *string, callerUserID string) (acc *domain.BankAccount, err error) {
	log := s.logger.With("context", "UpdateAccount", "accountNumber", accountNumber)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err = s.ResolveOwned(ctx, uow, accountNumber, callerUserID, false)
		if err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, accountNumber, dto.AccountUpdate{Name: name, AccountType: accountType}); err != nil {
			return err
		}
		if name != nil {
			acc.Name = *name
		}
		if accountType != nil {
			acc.AccountType = *accountType
		}
		return nil
	})
	if err != nil {
		log.Error("account update failed", "error", err)
		return nil, err
	}
	log.Info("account updated")
	return acc, nil
}

// DeleteAccount removes an account the caller owns. A non-zero balance does
// not block deletion; that policy belongs to the caller.
func (s *Service) DeleteAccount(ctx context.Context, accountNumber, callerUserID string) error {
	log := s.logger.With("context", "DeleteAccount", "accountNumber", accountNumber)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := s.ResolveOwned(ctx, uow, accountNumber, callerUserID, false); err != nil {
			return err
		}
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Delete(ctx, accountNumber)
	})
	if err != nil {
		log.Error("account deletion failed", "error", err)
		return err
	}
	log.Info("account deleted")
	return nil
}

// HasAnyAccounts reports whether the user still owns accounts. The user
// deletion workflow uses it as its guard.
func (s *Service) HasAnyAccounts(ctx context.Context, userID string) (has bool, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		has, err = repo.ExistsByUser(ctx, userID)
		return err
	})
	return has, err
}

// ResolveOwned looks an account up inside the caller's UnitOfWork and
// authorizes it for callerUserID: ErrAccountNotFound if the number does not
// resolve, ErrNotAllowed if it belongs to someone else. With forUpdate set
// the row is fetched under a write lock so balance mutations serialize per
// account. The transaction processor resolves its target through this
// method.
func (s *Service) ResolveOwned(ctx context.Context, uow repository.UnitOfWork, accountNumber, callerUserID string, forUpdate bool) (*domain.BankAccount, error) {
	repo, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	var acc *domain.BankAccount
	if forUpdate {
		acc, err = repo.GetForUpdate(ctx, accountNumber)
	} else {
		acc, err = repo.Get(ctx, accountNumber)
	}
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !acc.OwnedBy(callerUserID) {
		return nil, domain.ErrNotAllowed
	}
	return acc, nil
}
