package overview_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func tx(cat transaction.Category, sub, amount string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.New(),
		Category:    cat,
		Subcategory: sub,
		Amount:      dec(amount),
		Date:        date,
	}
}

var april = period.Period{Year: 2024, Month: time.April}

func TestComputeActuals(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(transaction.CategoryFixedExpense, "Moradia", "-1200", day(2024, 4, 5)),
		tx(transaction.CategoryFixedExpense, "Moradia", "-300", day(2024, 4, 30)),
		tx(transaction.CategoryVariableExpense, "Lazer", "80.5", day(2024, 4, 12)),
		tx(transaction.CategoryVariableExpense, "", "-20", day(2024, 4, 12)),
		tx(transaction.CategoryVariableExpense, "  ", "-5", day(2024, 4, 13)),
		tx(transaction.CategoryIncome, "Salário", "5000", day(2024, 4, 1)),
		tx(transaction.CategoryDebtPayment, "Cartão", "-250", day(2024, 4, 10)),
		tx(transaction.CategoryFixedExpense, "Moradia", "-999", day(2024, 5, 1)),
		tx(transaction.CategoryFixedExpense, "Moradia", "-999", day(2024, 3, 31)),
	}

	got := overview.ComputeActuals(txs, april.Start(), april.End())

	assert.Len(t, got, 3)
	assertDecimal(t, "1500", got["Moradia"])
	assertDecimal(t, "80.5", got["Lazer"])
	assertDecimal(t, "25", got[overview.OtherCategory])
}

func TestComputeActuals_MonthEndIsIncluded(t *testing.T) {
	// The last day of a 30-day month must count; the first day of the next must not.
	txs := []*transaction.Transaction{
		tx(transaction.CategoryVariableExpense, "Alimentação", "-10", time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC)),
		tx(transaction.CategoryVariableExpense, "Alimentação", "-10", day(2024, 5, 1)),
	}

	got := overview.ComputeActuals(txs, april.Start(), april.End())
	assertDecimal(t, "10", got["Alimentação"])
}

func TestComputeActuals_Properties(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(transaction.CategoryFixedExpense, "A", "-10", day(2024, 4, 1)),
		tx(transaction.CategoryFixedExpense, "A", "10", day(2024, 4, 2)),
		tx(transaction.CategoryVariableExpense, "B", "-0.01", day(2024, 4, 3)),
		tx(transaction.CategoryVariableExpense, "C", "1234.56", day(2024, 4, 4)),
		tx(transaction.CategoryIncome, "A", "-7", day(2024, 4, 5)),
	}

	got := overview.ComputeActuals(txs, april.Start(), april.End())

	for k, v := range got {
		assert.False(t, v.IsNegative(), "category %s is negative", k)
	}

	assertDecimal(t, "1254.57", got.Total())

	// Input order does not matter.
	reversed := make([]*transaction.Transaction, len(txs))
	for i, t := range txs {
		reversed[len(txs)-1-i] = t
	}

	again := overview.ComputeActuals(reversed, april.Start(), april.End())
	assert.Len(t, again, len(got))

	for k, v := range got {
		assertDecimal(t, v.String(), again[k], k)
	}
}

func TestComputeActuals_Empty(t *testing.T) {
	got := overview.ComputeActuals(nil, april.Start(), april.End())
	assert.Empty(t, got)
	assert.True(t, got.Total().IsZero())
}

func TestComputeDashboardSummary(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(transaction.CategoryIncome, "Salário", "5000", day(2024, 4, 5)),
		tx(transaction.CategoryIncome, "Freela", "500", day(2024, 4, 20)),
		tx(transaction.CategoryFixedExpense, "Moradia", "-1500", day(2024, 4, 6)),
		tx(transaction.CategoryVariableExpense, "Lazer", "-200", day(2024, 4, 7)),
		tx(transaction.CategoryDebtPayment, "Cartão", "-300", day(2024, 4, 10)),
		tx(transaction.CategoryIncome, "Salário", "5000", day(2024, 3, 5)),
	}

	debts := []*debt.Debt{
		{Name: "Cartão", TotalAmount: dec("4000"), MinimumPayment: dec("300"), DueDay: 10, Status: debt.StatusActive},
		{Name: "Carro", TotalAmount: dec("20000"), MinimumPayment: dec("800"), DueDay: 31, Status: debt.StatusActive},
		{Name: "Loja", TotalAmount: dec("1000"), MinimumPayment: dec("100"), DueDay: 5, Status: debt.StatusNegotiated},
	}

	got := overview.ComputeDashboardSummary(txs, debts, april)

	assertDecimal(t, "5500", got.MonthlyIncome)
	assertDecimal(t, "2000", got.MonthlyExpenses)
	assertDecimal(t, "3500", got.MonthlyBalance)
	// Day 31 does not exist in April and the negotiated debt is not active.
	assertDecimal(t, "300", got.MonthlyDebtPayments)
	assertDecimal(t, "25000", got.TotalDebtBalance)
}

func TestComputeDashboardSummary_Empty(t *testing.T) {
	got := overview.ComputeDashboardSummary(nil, nil, april)

	assertDecimal(t, "0", got.MonthlyIncome)
	assertDecimal(t, "0", got.MonthlyExpenses)
	assertDecimal(t, "0", got.MonthlyBalance)
	assertDecimal(t, "0", got.MonthlyDebtPayments)
	assertDecimal(t, "0", got.TotalDebtBalance)
}

func TestComputeDashboardSummary_NegativeBalance(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(transaction.CategoryIncome, "", "100", day(2024, 4, 1)),
		tx(transaction.CategoryVariableExpense, "", "-250", day(2024, 4, 2)),
	}

	got := overview.ComputeDashboardSummary(txs, nil, april)
	assertDecimal(t, "-150", got.MonthlyBalance)
}

func TestComputeDashboardSummary_MonthBoundaries(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(transaction.CategoryIncome, "", "1000", day(2024, 4, 1)),
		tx(transaction.CategoryVariableExpense, "Lazer", "-40", time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC)),
		tx(transaction.CategoryVariableExpense, "Lazer", "-500", day(2024, 5, 1)),
		tx(transaction.CategoryIncome, "", "700", day(2024, 3, 31)),
	}

	got := overview.ComputeDashboardSummary(txs, nil, april)

	assertDecimal(t, "1000", got.MonthlyIncome)
	assertDecimal(t, "40", got.MonthlyExpenses)
	assertDecimal(t, "960", got.MonthlyBalance)
}
