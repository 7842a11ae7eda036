package overview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/money"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

const (
	recentTransactions = 5
	topDebts           = 5
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=overview
type TransactionReader interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type DebtReader interface {
	List(ctx context.Context, filter debt.ListFilter) ([]*debt.Debt, error)
}

type BudgetStore interface {
	List(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*budget.Item, error)
	Create(ctx context.Context, ownerID uuid.UUID, p period.Period, category budget.Category, amount decimal.Decimal) (*budget.Item, error)
	UpdatePlannedAmount(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) (*budget.Item, error)
}

// Service loads the inputs of a view concurrently, then computes it.
type Service struct {
	txs     TransactionReader
	debts   DebtReader
	budgets BudgetStore
}

func NewService(txs TransactionReader, debts DebtReader, budgets BudgetStore) *Service {
	return &Service{txs: txs, debts: debts, budgets: budgets}
}

// Dashboard is the home screen: the month summary plus the latest activity.
type Dashboard struct {
	Period             period.Period
	Summary            Summary
	RecentTransactions []*transaction.Transaction
	TopDebts           []*debt.Debt
}

func (s *Service) monthTransactions(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*transaction.Transaction, error) {
	start, end := p.Start(), p.End()

	txs, err := s.txs.List(ctx, transaction.ListFilter{
		OwnerID:   ownerID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, &StoreError{Op: "listing transactions", Err: err}
	}

	return txs, nil
}

func (s *Service) activeDebts(ctx context.Context, ownerID uuid.UUID, order debt.Order) ([]*debt.Debt, error) {
	debts, err := s.debts.List(ctx, debt.ListFilter{
		OwnerID: ownerID,
		Status:  new(debt.StatusActive),
		OrderBy: order,
	})
	if err != nil {
		return nil, &StoreError{Op: "listing debts", Err: err}
	}

	return debts, nil
}

// GetBudgetView reconciles the period's budget items against its spend.
func (s *Service) GetBudgetView(ctx context.Context, ownerID uuid.UUID, p period.Period) (*BudgetView, error) {
	var (
		items []*budget.Item
		txs   []*transaction.Transaction
		debts []*debt.Debt
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		items, err = s.budgets.List(gctx, ownerID, p)
		if err != nil {
			return &StoreError{Op: "listing budget items", Err: err}
		}

		return nil
	})

	g.Go(func() error {
		var err error

		txs, err = s.monthTransactions(gctx, ownerID, p)

		return err
	})

	// Debts only link debt-labelled rows to their debt, so a failure leaves
	// those rows unresolved instead of failing the view.
	g.Go(func() error {
		var err error

		debts, err = s.activeDebts(gctx, ownerID, debt.OrderNewest)
		if err != nil && gctx.Err() == nil {
			slog.Warn("budget view without debt links", "period", p.String(), "error", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := Reconcile(items, ComputeActuals(txs, p.Start(), p.End()))
	ResolveDebts(rows, debts)

	return &BudgetView{
		Period: p,
		Rows:   rows,
		Totals: ComputeTotals(rows),
	}, nil
}

// GetDashboardSummary computes the summary of the month containing now.
func (s *Service) GetDashboardSummary(ctx context.Context, ownerID uuid.UUID, now time.Time) (Summary, error) {
	p := period.Of(now)

	var (
		txs   []*transaction.Transaction
		debts []*debt.Debt
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		txs, err = s.monthTransactions(gctx, ownerID, p)

		return err
	})

	g.Go(func() error {
		var err error

		debts, err = s.activeDebts(gctx, ownerID, debt.OrderNewest)

		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return ComputeDashboardSummary(txs, debts, p), nil
}

// GetDashboard returns the summary together with the latest transactions and
// the largest active debts.
func (s *Service) GetDashboard(ctx context.Context, ownerID uuid.UUID, now time.Time) (*Dashboard, error) {
	p := period.Of(now)

	var (
		monthTxs  []*transaction.Transaction
		recentTxs []*transaction.Transaction
		debts     []*debt.Debt
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		monthTxs, err = s.monthTransactions(gctx, ownerID, p)

		return err
	})

	g.Go(func() error {
		var err error

		recentTxs, err = s.txs.List(gctx, transaction.ListFilter{OwnerID: ownerID, Limit: recentTransactions})
		if err != nil {
			return &StoreError{Op: "listing recent transactions", Err: err}
		}

		return nil
	})

	g.Go(func() error {
		var err error

		debts, err = s.activeDebts(gctx, ownerID, debt.OrderLargestDebt)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	top := debts
	if len(top) > topDebts {
		top = top[:topDebts]
	}

	return &Dashboard{
		Period:             p,
		Summary:            ComputeDashboardSummary(monthTxs, debts, p),
		RecentTransactions: recentTxs,
		TopDebts:           top,
	}, nil
}

// maxPlannedAmount is the first value the planned_amount column cannot hold.
var maxPlannedAmount = decimal.New(1, 12)

// ParsePlannedAmount reads a user-entered plan. It must be a non-negative
// number below 10^12 with at most two decimal places.
func ParsePlannedAmount(raw string) (decimal.Decimal, error) {
	amount, err := money.Parse(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "not a number", Err: err}
	}

	switch {
	case amount.IsNegative():
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "must not be negative", Err: money.ErrInvalidAmount}
	case amount.GreaterThanOrEqual(maxPlannedAmount):
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "too large", Err: money.ErrInvalidAmount}
	case !amount.Equal(amount.Round(2)):
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "at most 2 decimal places", Err: money.ErrInvalidAmount}
	}

	return amount, nil
}

// SavePlannedAmount sets the plan of a row. Synthesized rows get a new budget
// item for the period unless one for the same category already exists, in
// which case that item is updated. Callers reload the view afterwards.
func (s *Service) SavePlannedAmount(ctx context.Context, ownerID uuid.UUID, p period.Period, ref RowRef, raw string) (*budget.Item, error) {
	amount, err := ParsePlannedAmount(raw)
	if err != nil {
		return nil, err
	}

	if !ref.Synthesized() {
		return s.updatePlan(ctx, ownerID, ref.ItemID, amount)
	}

	category := budget.ParseCategory(ref.Category)
	if category.Name == "" {
		return nil, &ValidationError{Field: "category", Value: ref.Category, Reason: "must not be empty"}
	}

	items, err := s.budgets.List(ctx, ownerID, p)
	if err != nil {
		return nil, &StoreError{Op: "listing budget items", Err: err}
	}

	if existing := findItem(items, category); existing != nil {
		return s.updatePlan(ctx, ownerID, existing.ID, amount)
	}

	item, err := s.budgets.Create(ctx, ownerID, p, category, amount)
	if err != nil {
		return nil, &StoreError{Op: "creating budget item", Err: err}
	}

	return item, nil
}

func (s *Service) updatePlan(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) (*budget.Item, error) {
	item, err := s.budgets.UpdatePlannedAmount(ctx, ownerID, id, amount)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			return nil, fmt.Errorf("budget row %s: %w", id, budget.ErrNotFound)
		}

		return nil, &StoreError{Op: "updating budget item", Err: err}
	}

	return item, nil
}

// AddBudgetCategory plans a new category for the period.
func (s *Service) AddBudgetCategory(ctx context.Context, ownerID uuid.UUID, p period.Period, label, raw string) (*budget.Item, error) {
	category := budget.ParseCategory(label)
	if category.Name == "" {
		return nil, &ValidationError{Field: "category", Value: label, Reason: "must not be empty"}
	}

	amount, err := ParsePlannedAmount(raw)
	if err != nil {
		return nil, err
	}

	items, err := s.budgets.List(ctx, ownerID, p)
	if err != nil {
		return nil, &StoreError{Op: "listing budget items", Err: err}
	}

	if findItem(items, category) != nil {
		return nil, &ValidationError{
			Field:  "category",
			Value:  label,
			Reason: "already planned for " + p.String(),
			Err:    budget.ErrDuplicate,
		}
	}

	item, err := s.budgets.Create(ctx, ownerID, p, category, amount)
	if err != nil {
		return nil, &StoreError{Op: "creating budget item", Err: err}
	}

	return item, nil
}

// BudgetCategories lists the labels offered when planning: the defaults, then
// one debt-linked category per active debt.
func (s *Service) BudgetCategories(ctx context.Context, ownerID uuid.UUID) ([]budget.Category, error) {
	debts, err := s.activeDebts(ctx, ownerID, debt.OrderNewest)
	if err != nil {
		return nil, err
	}

	out := make([]budget.Category, 0, len(budget.DefaultCategories)+len(debts))
	for _, name := range budget.DefaultCategories {
		out = append(out, budget.StandardCategory(name))
	}

	for _, d := range debts {
		if strings.TrimSpace(d.Name) == "" {
			continue
		}

		out = append(out, budget.DebtCategory(d.ID, d.Name))
	}

	return out, nil
}
