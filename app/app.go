// Package app assembles the services from their shared dependencies.
package app

import (
	"log/slog"

	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/pkg/repository"
	accountsvc "github.com/talonbank/ledger/pkg/service/account"
	authsvc "github.com/talonbank/ledger/pkg/service/auth"
	transactionsvc "github.com/talonbank/ledger/pkg/service/transaction"
	usersvc "github.com/talonbank/ledger/pkg/service/user"
)

// Deps carries everything the services need to run.
type Deps struct {
	Uow    repository.UnitOfWork
	Config *config.AppConfig
	Logger *slog.Logger
}

// App holds the wired services.
type App struct {
	Deps Deps

	AuthService        *authsvc.Service
	UserService        *usersvc.Service
	AccountService     *accountsvc.Service
	TransactionService *transactionsvc.Service
}

// New builds all services on top of the shared UnitOfWork.
func New(deps Deps) *App {
	accountSvc := accountsvc.New(deps.Uow, deps.Logger)
	return &App{
		Deps:               deps,
		AuthService:        authsvc.New(deps.Uow, &deps.Config.Jwt, deps.Logger),
		UserService:        usersvc.New(deps.Uow, deps.Logger),
		AccountService:     accountSvc,
		TransactionService: transactionsvc.New(deps.Uow, accountSvc, deps.Logger),
	}
}
