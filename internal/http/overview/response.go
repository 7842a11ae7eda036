package overview

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	debtHttp "github.com/MrJamesThe3rd/budgetly/internal/http/debt"
	txHttp "github.com/MrJamesThe3rd/budgetly/internal/http/transaction"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
)

type categoryResponse struct {
	Label  string     `json:"label"`
	Kind   string     `json:"kind"`
	Name   string     `json:"name"`
	DebtID *uuid.UUID `json:"debt_id,omitempty"`
}

func toCategoryResponse(c budget.Category) categoryResponse {
	resp := categoryResponse{Label: c.Label(), Kind: "standard", Name: c.Name}

	if c.IsDebt() {
		resp.Kind = "debt"
		if c.DebtID != uuid.Nil {
			resp.DebtID = new(c.DebtID)
		}
	}

	return resp
}

type rowResponse struct {
	Ref         string           `json:"ref"`
	Category    categoryResponse `json:"category"`
	Planned     decimal.Decimal  `json:"planned"`
	Actual      decimal.Decimal  `json:"actual"`
	Difference  decimal.Decimal  `json:"difference"`
	Synthesized bool             `json:"synthesized"`
	Duplicate   bool             `json:"duplicate,omitempty"`
}

type totalsResponse struct {
	Planned    decimal.Decimal `json:"planned"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
}

type budgetViewResponse struct {
	Month  int            `json:"month"`
	Year   int            `json:"year"`
	Rows   []rowResponse  `json:"rows"`
	Totals totalsResponse `json:"totals"`
	Error  string         `json:"error,omitempty"`
}

func toTotalsResponse(t overview.Totals) totalsResponse {
	return totalsResponse{Planned: t.Planned, Actual: t.Actual, Difference: t.Difference()}
}

func toBudgetViewResponse(v *overview.BudgetView) budgetViewResponse {
	rows := make([]rowResponse, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = rowResponse{
			Ref:         r.Ref.String(),
			Category:    toCategoryResponse(r.Category),
			Planned:     r.Planned,
			Actual:      r.Actual,
			Difference:  r.Difference(),
			Synthesized: r.Synthesized,
			Duplicate:   r.Duplicate,
		}
	}

	return budgetViewResponse{
		Month:  int(v.Period.Month),
		Year:   v.Period.Year,
		Rows:   rows,
		Totals: toTotalsResponse(v.Totals),
	}
}

// emptyBudgetView is returned alongside an error so clients can still render the page.
func emptyBudgetView(p period.Period, msg string) budgetViewResponse {
	return budgetViewResponse{
		Month:  int(p.Month),
		Year:   p.Year,
		Rows:   []rowResponse{},
		Totals: toTotalsResponse(overview.ComputeTotals(nil)),
		Error:  msg,
	}
}

type itemResponse struct {
	ID            uuid.UUID        `json:"id"`
	Ref           string           `json:"ref"`
	Month         int              `json:"month"`
	Year          int              `json:"year"`
	Category      categoryResponse `json:"category"`
	PlannedAmount decimal.Decimal  `json:"planned_amount"`
}

func toItemResponse(item *budget.Item) itemResponse {
	return itemResponse{
		ID:            item.ID,
		Ref:           overview.ItemRef(item.ID).String(),
		Month:         int(item.Month),
		Year:          item.Year,
		Category:      toCategoryResponse(budget.ParseCategory(item.Category)),
		PlannedAmount: item.PlannedAmount,
	}
}

type summaryResponse struct {
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses     decimal.Decimal `json:"monthly_expenses"`
	MonthlyBalance      decimal.Decimal `json:"monthly_balance"`
	MonthlyDebtPayments decimal.Decimal `json:"monthly_debt_payments"`
	TotalDebtBalance    decimal.Decimal `json:"total_debt_balance"`
}

func toSummaryResponse(s overview.Summary) summaryResponse {
	return summaryResponse(s)
}

type dashboardResponse struct {
	Month              int                 `json:"month"`
	Year               int                 `json:"year"`
	Summary            summaryResponse     `json:"summary"`
	RecentTransactions []txHttp.Response   `json:"recent_transactions"`
	TopDebts           []debtHttp.Response `json:"top_debts"`
}

func toDashboardResponse(d *overview.Dashboard) dashboardResponse {
	return dashboardResponse{
		Month:              int(d.Period.Month),
		Year:               d.Period.Year,
		Summary:            toSummaryResponse(d.Summary),
		RecentTransactions: txHttp.ToResponseList(d.RecentTransactions),
		TopDebts:           debtHttp.ToResponseList(d.TopDebts),
	}
}
