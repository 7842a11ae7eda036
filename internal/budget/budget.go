package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a planned amount for one category in one month.
// At most one item exists per (owner, month, year, category).
type Item struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Month         time.Month
	Year          int
	Category      string
	PlannedAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
