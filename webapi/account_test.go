package webapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/money"
)

func getJSON(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateAccountEndpoint(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.Seqs.On("Next", mock.Anything, domain.KindAccount).Return(int64(1), nil).Once()
	uow.Accounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.BankAccount")).Return(nil).Once()

	resp := postJSON(t, app, "/v1/accounts", TestToken(t, "usr-1"), `{"name":"My Account","accountType":"personal"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		AccountNumber string  `json:"accountNumber"`
		SortCode      string  `json:"sortCode"`
		Balance       float64 `json:"balance"`
		Currency      string  `json:"currency"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "01000001", data.AccountNumber)
	assert.Equal(t, "10-10-10", data.SortCode)
	assert.Equal(t, 0.0, data.Balance)
	assert.Equal(t, "GBP", data.Currency)
}

func TestCreateAccountEndpoint_InvalidType(t *testing.T) {
	app, _ := SetupTestApp(t)

	resp := postJSON(t, app, "/v1/accounts", TestToken(t, "usr-1"), `{"name":"My Account","accountType":"business"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAccountEndpoint_NoToken(t *testing.T) {
	app, _ := SetupTestApp(t)

	resp := postJSON(t, app, "/v1/accounts", "", `{"name":"My Account","accountType":"personal"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAccountEndpoint(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()

	resp := getJSON(t, app, "/v1/accounts/01000001", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetAccountEndpoint_OtherOwner(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()

	resp := getJSON(t, app, "/v1/accounts/01000001", TestToken(t, "usr-2"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetAccountEndpoint_BadNumberFormat(t *testing.T) {
	app, uow := SetupTestApp(t)

	resp := getJSON(t, app, "/v1/accounts/99000001", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	uow.Accounts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetAccountEndpoint_NotFound(t *testing.T) {
	app, uow := SetupTestApp(t)
	uow.Accounts.On("Get", mock.Anything, "01000009").Return(nil, nil).Once()

	resp := getJSON(t, app, "/v1/accounts/01000009", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAccountsEndpoint(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := []*domain.BankAccount{
		domain.NewBankAccount("01000001", "usr-1", "Current", "personal"),
		domain.NewBankAccount("01000002", "usr-1", "Rainy day", "savings"),
	}
	uow.Accounts.On("ListByUser", mock.Anything, "usr-1").Return(stored, nil).Once()

	resp := getJSON(t, app, "/v1/accounts", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data []struct {
		AccountNumber string `json:"accountNumber"`
	}
	decodeData(t, resp, &data)
	require.Len(t, data, 2)
	assert.Equal(t, "01000001", data[0].AccountNumber)
}

func TestDeleteAccountEndpoint(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Accounts.On("Delete", mock.Anything, "01000001").Return(nil).Once()

	resp := requestJSON(t, app, http.MethodDelete, "/v1/accounts/01000001", TestToken(t, "usr-1"), "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCreateTransactionEndpoint_Deposit(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("GetForUpdate", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Seqs.On("Next", mock.Anything, domain.KindTransaction).Return(int64(1), nil).Once()
	uow.Accounts.On("Update", mock.Anything, "01000001", mock.Anything).Return(nil).Once()
	uow.Transactions.On("Create", mock.Anything, mock.AnythingOfType("*domain.Transaction")).Return(nil).Once()

	resp := postJSON(t, app, "/v1/accounts/01000001/transactions", TestToken(t, "usr-1"), `{"amount":100.0,"currency":"GBP","type":"deposit"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
		Type   string  `json:"type"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "tan-1", data.ID)
	assert.Equal(t, 100.0, data.Amount)
	assert.Equal(t, "deposit", data.Type)
}

func TestCreateTransactionEndpoint_InsufficientFunds(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	require.NoError(t, stored.Deposit(money.FromMinor(100)))
	uow.Accounts.On("GetForUpdate", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Seqs.On("Next", mock.Anything, domain.KindTransaction).Return(int64(1), nil).Once()

	resp := postJSON(t, app, "/v1/accounts/01000001/transactions", TestToken(t, "usr-1"), `{"amount":50.0,"currency":"GBP","type":"withdrawal"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	uow.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTransactionEndpoint_UnknownType(t *testing.T) {
	app, _ := SetupTestApp(t)

	resp := postJSON(t, app, "/v1/accounts/01000001/transactions", TestToken(t, "usr-1"), `{"amount":50.0,"currency":"GBP","type":"transfer"}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateTransactionEndpoint_WrongCurrency(t *testing.T) {
	app, _ := SetupTestApp(t)

	resp := postJSON(t, app, "/v1/accounts/01000001/transactions", TestToken(t, "usr-1"), `{"amount":50.0,"currency":"USD","type":"deposit"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListTransactionsEndpoint(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	txs := []*domain.Transaction{
		domain.NewTransaction("tan-1", "01000001", money.FromMinor(10000), domain.Deposit),
	}
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Transactions.On("ListByAccount", mock.Anything, "01000001").Return(txs, nil).Once()

	resp := getJSON(t, app, "/v1/accounts/01000001/transactions", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetTransactionEndpoint_NotFound(t *testing.T) {
	app, uow := SetupTestApp(t)
	stored := domain.NewBankAccount("01000001", "usr-1", "My Account", "personal")
	uow.Accounts.On("Get", mock.Anything, "01000001").Return(stored, nil).Once()
	uow.Transactions.On("GetByIDAndAccount", mock.Anything, "tan-9", "01000001").Return(nil, nil).Once()

	resp := getJSON(t, app, "/v1/accounts/01000001/transactions/tan-9", TestToken(t, "usr-1"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
