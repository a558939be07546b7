package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/talonbank/ledger/app"
	"github.com/talonbank/ledger/config"
	"github.com/talonbank/ledger/infra"
	infrarepo "github.com/talonbank/ledger/infra/repository"
	"github.com/talonbank/ledger/webapi"
)

// @title Ledger API
// @version 1.0.0
// @description Custodial bank ledger API
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := infra.NewLogger(&config.Log{})

	cfg, err := config.Load(logger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger = infra.NewLogger(&cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a := app.New(app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Config: cfg,
		Logger: logger,
	})
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return fiberApp.Listen(addr)
}
