package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies a transaction.
type Category string

const (
	CategoryIncome          Category = "income"
	CategoryFixedExpense    Category = "fixed_expense"
	CategoryVariableExpense Category = "variable_expense"
	CategoryDebtPayment     Category = "debt_payment"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryIncome, CategoryFixedExpense, CategoryVariableExpense, CategoryDebtPayment:
		return true
	}

	return false
}

// IsBudgeted reports whether the category feeds the per-category budget actuals.
// Debt payments are tracked against debts, not budget lines.
func (c Category) IsBudgeted() bool {
	return c == CategoryFixedExpense || c == CategoryVariableExpense
}

// Transaction represents a single money movement recorded by an owner.
type Transaction struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Date          time.Time
	Description   string
	Category      Category
	Subcategory   string
	Amount        decimal.Decimal // signed: income positive, expenses usually negative
	AccountSource string
	DebtID        *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
