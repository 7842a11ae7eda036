package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
)

type Response struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	MinimumPayment      decimal.Decimal `json:"minimum_payment"`
	DueDay              int             `json:"due_day"`
	Strategy            debt.Strategy   `json:"priority_strategy"`
	Status              debt.Status     `json:"status"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(d *debt.Debt) Response {
	return Response{
		ID:                  d.ID,
		Name:                d.Name,
		TotalAmount:         d.TotalAmount,
		MonthlyInterestRate: d.MonthlyInterestRate,
		MinimumPayment:      d.MinimumPayment,
		DueDay:              d.DueDay,
		Strategy:            d.Strategy,
		Status:              d.Status,
		Notes:               d.Notes,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func ToResponseList(debts []*debt.Debt) []Response {
	resp := make([]Response, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	return resp
}
