// Package overview folds raw transactions, debts and budget items into the
// budget-vs-actual view and the monthly dashboard summary.
package overview

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/money"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

// OtherCategory collects budgeted spend recorded without a subcategory.
const OtherCategory = "other"

// Actuals maps a budget category label to the absolute amount spent on it.
type Actuals map[string]decimal.Decimal

// Total sums every category.
func (a Actuals) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range a {
		total = total.Add(v)
	}

	return total
}

// ComputeActuals sums the absolute amounts of fixed and variable expenses dated in
// [start, end), keyed by subcategory. Income and debt payments are not counted.
func ComputeActuals(txs []*transaction.Transaction, start, end time.Time) Actuals {
	actuals := make(Actuals)

	for _, tx := range txs {
		if tx == nil || !tx.Category.IsBudgeted() {
			continue
		}

		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}

		key := categoryKey(tx.Subcategory)
		if key == "" {
			key = OtherCategory
		}

		actuals[key] = money.SumAbs(actuals[key], tx.Amount)
	}

	return actuals
}

// Summary holds the headline figures of a month.
type Summary struct {
	MonthlyIncome       decimal.Decimal
	MonthlyExpenses     decimal.Decimal
	MonthlyBalance      decimal.Decimal
	MonthlyDebtPayments decimal.Decimal
	TotalDebtBalance    decimal.Decimal
}

// ComputeDashboardSummary derives the month's figures.
//
// Expenses include every non-income category, debt payments included. The debt
// payment figure is the minimum payment of each active debt whose due day falls
// in the month; it does not check whether a payment was actually recorded.
// The debt balance sums the given debts as provided.
func ComputeDashboardSummary(txs []*transaction.Transaction, debts []*debt.Debt, p period.Period) Summary {
	s := Summary{
		MonthlyIncome:       decimal.Zero,
		MonthlyExpenses:     decimal.Zero,
		MonthlyBalance:      decimal.Zero,
		MonthlyDebtPayments: decimal.Zero,
		TotalDebtBalance:    decimal.Zero,
	}

	for _, tx := range txs {
		if tx == nil || !p.Contains(tx.Date) {
			continue
		}

		if tx.Category == transaction.CategoryIncome {
			s.MonthlyIncome = s.MonthlyIncome.Add(tx.Amount)
			continue
		}

		s.MonthlyExpenses = money.SumAbs(s.MonthlyExpenses, tx.Amount)
	}

	s.MonthlyBalance = s.MonthlyIncome.Sub(s.MonthlyExpenses)

	for _, d := range debts {
		if d == nil {
			continue
		}

		s.TotalDebtBalance = s.TotalDebtBalance.Add(d.TotalAmount)

		if d.Status == debt.StatusActive && d.DueIn(p.Year, p.Month) {
			s.MonthlyDebtPayments = s.MonthlyDebtPayments.Add(d.MinimumPayment)
		}
	}

	return s
}
