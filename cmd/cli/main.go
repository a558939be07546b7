// Operator CLI for the ledger. It talks straight to the services over the
// database connection, bypassing the HTTP surface and its token guard, so
// it is meant for operators only.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/talonbank/ledger/app"
	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/infra"
	infrarepo "github.com/talonbank/ledger/infra/repository"
	"github.com/talonbank/ledger/pkg/domain"
	"github.com/talonbank/ledger/pkg/money"
	usersvc "github.com/talonbank/ledger/pkg/service/user"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <name> <email> <phone> <line1> <town> <county> <postcode>")
	fmt.Println("  create-account <user_id> <name> <personal|savings>")
	fmt.Println("  deposit <user_id> <account_number> <amount>")
	fmt.Println("  withdraw <user_id> <account_number> <amount>")
	fmt.Println("  balance <user_id> <account_number>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := infra.NewLogger(&config.Log{Level: 8}) // errors only; output goes to stdout below
	cfg, err := config.Load(logger, ".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	a := app.New(app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Config: cfg,
		Logger: logger,
	})

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "create-user":
		createUser(ctx, a, args)
	case "create-account":
		createAccount(ctx, a, args)
	case "deposit":
		transact(ctx, a, args, domain.Deposit)
	case "withdraw":
		transact(ctx, a, args, domain.Withdrawal)
	case "balance":
		balance(ctx, a, args)
	default:
		color.Red("Unknown command: %s", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func createUser(ctx context.Context, a *app.App, args []string) {
	if len(args) < 7 {
		usage()
		os.Exit(1)
	}
	fmt.Print("Password: ")
	password, err := term.ReadPassword(syscall.Stdin)
	fmt.Println()
	if err != nil {
		color.Red("Failed to read password: %v", err)
		os.Exit(1)
	}
	u, err := a.UserService.CreateUser(ctx, usersvc.NewUserInput{
		Name: args[0],
		Address: domain.Address{
			Line1:    args[3],
			Town:     args[4],
			County:   args[5],
			Postcode: args[6],
		},
		PhoneNumber: args[2],
		Email:       args[1],
		Password:    string(password),
	})
	if err != nil {
		color.Red("Failed to create user: %v", err)
		os.Exit(1)
	}
	color.Green("User created: %s", u.ID)
}

func createAccount(ctx context.Context, a *app.App, args []string) {
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}
	acc, err := a.AccountService.CreateAccount(ctx, args[0], args[1], args[2])
	if err != nil {
		color.Red("Failed to create account: %v", err)
		os.Exit(1)
	}
	color.Green("Account created: %s (sort code %s)", acc.AccountNumber, acc.SortCode)
}

func transact(ctx context.Context, a *app.App, args []string, kind domain.TransactionKind) {
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		color.Red("Invalid amount: %v", err)
		os.Exit(1)
	}
	tx, err := a.TransactionService.CreateTransaction(ctx, args[1], amount, money.Currency, string(kind), args[0])
	if err != nil {
		color.Red("Transaction failed: %v", err)
		os.Exit(1)
	}
	acc, err := a.AccountService.GetAccount(ctx, args[1], args[0])
	if err != nil {
		color.Red("Failed to fetch balance: %v", err)
		os.Exit(1)
	}
	color.Green("%s %s applied to %s. New balance: %.2f %s", tx.ID, tx.Kind, acc.AccountNumber, acc.Balance.Float(), acc.Currency)
}

func balance(ctx context.Context, a *app.App, args []string) {
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	acc, err := a.AccountService.GetAccount(ctx, args[1], args[0])
	if err != nil {
		color.Red("Failed to fetch account: %v", err)
		os.Exit(1)
	}
	color.Green("Account %s balance: %.2f %s", acc.AccountNumber, acc.Balance.Float(), acc.Currency)
}
