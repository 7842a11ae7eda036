package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/budgetly/internal/budget/store"
	"github.com/MrJamesThe3rd/budgetly/internal/config"
	"github.com/MrJamesThe3rd/budgetly/internal/database"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	debtStore "github.com/MrJamesThe3rd/budgetly/internal/debt/store"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
	txStore "github.com/MrJamesThe3rd/budgetly/internal/transaction/store"
)

// app holds what the subcommands share. cfg is loaded before any of them runs.
type app struct {
	cfg   *config.Config
	owner string
	now   func() time.Time
}

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
)

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Administer a Budgetly installation",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.owner, "owner", "", "owner id (defaults to TUI_OWNER_ID)")

	root.AddCommand(
		a.tokenCmd(),
		a.migrateCmd(),
		a.budgetCmd(),
		a.reportCmd(),
	)

	return root
}

func (a *app) ownerID() (uuid.UUID, error) {
	raw := a.owner
	if raw == "" {
		raw = a.cfg.TUI.OwnerID
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid owner id %q", raw)
	}

	return id, nil
}

func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := database.New(ctx, a.cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

// withOverview runs fn against an overview service backed by the configured database.
func (a *app) withOverview(ctx context.Context, fn func(*overview.Service) error) error {
	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	debtSvc := debt.NewService(debtStore.New(db))
	txSvc := transaction.NewService(txStore.New(db), debtSvc)
	budgetSvc := budget.NewService(budgetStore.New(db))

	return fn(overview.NewService(txSvc, debtSvc, budgetSvc))
}

// addPeriodFlags registers --month and --year; zero means the current month.
func addPeriodFlags(cmd *cobra.Command, month, year *int) {
	cmd.Flags().IntVar(month, "month", 0, "month 1-12 (defaults to the current month)")
	cmd.Flags().IntVar(year, "year", 0, "year (defaults to the current year)")
}

func (a *app) period(month, year int) (period.Period, error) {
	current := period.Of(a.now())

	if month == 0 {
		month = int(current.Month)
	}

	if year == 0 {
		year = current.Year
	}

	return period.New(year, month)
}
