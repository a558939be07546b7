package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talonbank/ledger/internal/fixtures"
	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/dto"
	accountsvc "github.com/talonbank/ledger/pkg/service/account"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateAccount(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	uow.Seqs.On("Next", mock.Anything, domain.KindAccount).Return(int64(123), nil).Once()
	uow.Accounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil).Once()

	acc, err := svc.CreateAccount(context.Background(), "usr-1", "My Account", "personal")
	require.NoError(t, err)
	assert.Equal(t, "01000123", acc.AccountNumber)
	assert.Equal(t, "usr-1", acc.UserID)
	assert.Equal(t, domain.SortCode, acc.SortCode)
	assert.Equal(t, int64(0), acc.Balance.Minor())
}

func TestGetAccount(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()

	acc, err := svc.GetAccount(context.Background(), "01000001", "usr-1")
	require.NoError(t, err)
	assert.Equal(t, stored, acc)
}

func TestGetAccount_NotFound(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	uow.Accounts.On("Get", mock.Anything, "01000001").Return(nil, nil).Once()

	_, err := svc.GetAccount(context.Background(), "01000001", "usr-1")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetAccount_OtherOwner(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()

	_, err := svc.GetAccount(context.Background(), "01000001", "usr-2")
	require.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestListAccounts(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := []*domain.BankAccount{
		domain.NewBankAccount("01000001", "usr-1", "Current", "personal"),
		domain.NewBankAccount("01000002", "usr-1", "Rainy day", "savings"),
	}
	uow.Accounts.On("ListByUser", mock.Anything, "usr-1").Return(stored, nil).Once()

	accs, err := svc.ListAccounts(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Len(t, accs, 2)
}

func TestUpdateAccount(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	name := "Renamed"
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Accounts.On("Update", mock.Anything, "01000001", dto.AccountUpdate{Name: &name}).Return(nil).Once()

	acc, err := svc.UpdateAccount(context.Background(), "01000001", &name, nil, "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", acc.Name)
	assert.Equal(t, "personal", acc.AccountType)
}

func TestUpdateAccount_OtherOwner(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	name := "Renamed"
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()

	_, err := svc.UpdateAccount(context.Background(), "01000001", &name, nil, "usr-2")
	require.ErrorIs(t, err, domain.ErrNotAllowed)
	uow.Accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAccount(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Accounts.On("Delete", mock.Anything, "01000001").Return(nil).Once()

	require.NoError(t, svc.DeleteAccount(context.Background(), "01000001", "usr-1"))
}

func TestDeleteAccount_NotFound(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	uow.Accounts.On("Get", mock.Anything, "01000001").Return(nil, nil).Once()

	err := svc.DeleteAccount(context.Background(), "01000001", "usr-1")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	uow.Accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHasAnyAccounts(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	uow.Accounts.On("ExistsByUser", mock.Anything, "usr-1").Return(true, nil).Once()

	has, err := svc.HasAnyAccounts(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestResolveOwned_ForUpdateUsesLockedRead(t *testing.T) {
	uow := fixtures.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, newTestLogger())

	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("GetForUpdate", mock.Anything, "01000001").Return(stored, nil).Once()

	acc, err := svc.ResolveOwned(context.Background(), uow, "01000001", "usr-1", true)
	require.NoError(t, err)
	assert.Equal(t, stored, acc)
	uow.Accounts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
