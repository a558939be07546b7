// Package user provides business logic for user lifecycle operations.
package user

import (
	"context"
	"log/slog"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/repository"
	"github.com/talonbank/ledger/pkg/utils"
)

// NewUserInput carries the fields needed to register a user. Password is
// plaintext here and hashed before anything is persisted.
type NewUserInput struct {
	Name        string
	Address     domain.Address
	PhoneNumber string
	Email       string
	Password    string
}

// Service implements user creation, reads, updates and guarded deletion.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser registers a user, allocating the user and address identifiers
// from their durable sequences and storing a bcrypt hash of the password.
func (s *Service) CreateUser(ctx context.Context, input NewUserInput) (u *domain.User, err error) {
	log := s.logger.With("context", "CreateUser")
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error("password hashing failed", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		seqs, err := uow.Sequences()
		if err != nil {
			return err
		}
		userSeq, err := seqs.Next(ctx, domain.KindUser)
		if err != nil {
			return err
		}
		addrSeq, err := seqs.Next(ctx, domain.KindAddress)
		if err != nil {
			return err
		}
		address := input.Address
		address.ID = domain.FormatID(domain.KindAddress, addrSeq)
		u = domain.NewUser(
			domain.FormatID(domain.KindUser, userSeq),
			input.Name,
			address,
			input.PhoneNumber,
			input.Email,
			hashed,
		)
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		log.Error("user creation failed", "error", err)
		return nil, err
	}
	log.Info("user created", "userID", u.ID)
	return u, nil
}

// GetUser fetches a user. Callers may only read themselves.
func (s *Service) GetUser(ctx context.Context, userID, callerUserID string) (u *domain.User, err error) {
	if err := checkUserAllowed(userID, callerUserID); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser changes name, address, phone number or email. Callers may only
// update themselves; identifier and password are immutable through this
// path.
func (s *Service) UpdateUser(ctx context.Context, userID string, update dto.UserUpdate, callerUserID string) (u *domain.User, err error) {
	log := s.logger.With("context", "UpdateUser", "userID", userID)
	if err := checkUserAllowed(userID, callerUserID); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		existing, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrUserNotFound
		}
		if err := repo.Update(ctx, userID, update); err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		log.Error("user update failed", "error", err)
		return nil, err
	}
	log.Info("user updated")
	return u, nil
}

// DeleteUser removes a user and its address. A user who still owns bank
// accounts cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, userID, callerUserID string) error {
	log := s.logger.With("context", "DeleteUser", "userID", userID)
	if err := checkUserAllowed(userID, callerUserID); err != nil {
		return err
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		hasAccounts, err := accounts.ExistsByUser(ctx, userID)
		if err != nil {
			return err
		}
		if hasAccounts {
			return domain.ErrUserHasAccounts
		}
		return users.Delete(ctx, userID)
	})
	if err != nil {
		log.Error("user deletion failed", "error", err)
		return err
	}
	log.Info("user deleted")
	return nil
}

// checkUserAllowed rejects any caller acting on a user other than itself.
func checkUserAllowed(userID, callerUserID string) error {
	if userID != callerUserID {
		return domain.ErrNotAllowed
	}
	return nil
}
