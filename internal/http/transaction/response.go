package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

type Response struct {
	ID            uuid.UUID            `json:"id"`
	Date          string               `json:"date"`
	Description   string               `json:"description"`
	Category      transaction.Category `json:"category"`
	Subcategory   string               `json:"subcategory,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	AccountSource string               `json:"account_source,omitempty"`
	DebtID        *uuid.UUID           `json:"debt_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     *time.Time           `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) Response {
	return Response{
		ID:            tx.ID,
		Date:          tx.Date.Format(time.DateOnly),
		Description:   tx.Description,
		Category:      tx.Category,
		Subcategory:   tx.Subcategory,
		Amount:        tx.Amount,
		AccountSource: tx.AccountSource,
		DebtID:        tx.DebtID,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

// ToResponseList is also used by the dashboard for its recent transactions.
func ToResponseList(txs []*transaction.Transaction) []Response {
	resp := make([]Response, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
