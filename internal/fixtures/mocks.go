// Package fixtures provides hand-rolled testify mocks for the repository
// contracts, shared by the service and webapi tests.
package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	"github.com/talonbank/ledger/pkg/repository"
)

// MockUnitOfWork is a UnitOfWork whose Do runs the callback against the
// mock itself, so repository expectations set on the sub-mocks are visible
// inside the transaction boundary. Set DoErr to simulate a failed
// transaction without running the callback.
type MockUnitOfWork struct {
	Users        *MockUserRepository
	Accounts     *MockAccountRepository
	Transactions *MockTransactionRepository
	Seqs         *MockSequences
	DoErr        error
}

// NewMockUnitOfWork builds a UnitOfWork with all sub-mocks wired and their
// expectations asserted at cleanup.
func NewMockUnitOfWork(t *testing.T) *MockUnitOfWork {
	t.Helper()
	m := &MockUnitOfWork{
		Users:        &MockUserRepository{},
		Accounts:     &MockAccountRepository{},
		Transactions: &MockTransactionRepository{},
		Seqs:         &MockSequences{},
	}
	t.Cleanup(func() {
		m.Users.AssertExpectations(t)
		m.Accounts.AssertExpectations(t)
		m.Transactions.AssertExpectations(t)
		m.Seqs.AssertExpectations(t)
	})
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(m)
}

func (m *MockUnitOfWork) UserRepository() (repository.UserRepository, error) {
	return m.Users, nil
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return m.Accounts, nil
}

func (m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return m.Transactions, nil
}

func (m *MockUnitOfWork) Sequences() (repository.Sequences, error) {
	return m.Seqs, nil
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update dto.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *domain.BankAccount) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountNumber)
	a, _ := args.Get(0).(*domain.BankAccount)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountNumber)
	a, _ := args.Get(0).(*domain.BankAccount)
	return a, args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	accs, _ := args.Get(0).([]*domain.BankAccount)
	return accs, args.Error(1)
}

func (m *MockAccountRepository) ExistsByUser(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error {
	return m.Called(ctx, accountNumber, update).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, accountNumber string) error {
	return m.Called(ctx, accountNumber).Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransactionRepository) GetByIDAndAccount(ctx context.Context, id, accountNumber string) (*domain.Transaction, error) {
	args := m.Called(ctx, id, accountNumber)
	tx, _ := args.Get(0).(*domain.Transaction)
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountNumber string) ([]*domain.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	txs, _ := args.Get(0).([]*domain.Transaction)
	return txs, args.Error(1)
}

type MockSequences struct {
	mock.Mock
}

func (m *MockSequences) Next(ctx context.Context, kind domain.IDKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}
