package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy is the payoff prioritisation label chosen by the owner.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche"
	StrategySnowball  Strategy = "snowball"
	StrategyCustom    Strategy = "custom"
)

// Status represents where a debt is in its lifecycle. Transitions are user driven.
type Status string

const (
	StatusActive     Status = "active"
	StatusNegotiated Status = "negotiated"
	StatusPaid       Status = "paid"
)

// Debt is an outstanding obligation tracked by an owner.
type Debt struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	TotalAmount         decimal.Decimal
	MonthlyInterestRate decimal.Decimal // percent
	MinimumPayment      decimal.Decimal
	DueDay              int
	Strategy            Strategy
	Status              Status
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// DueIn reports whether the due day, placed in the given month, still falls inside it.
// Day 31 in a 30-day month rolls into the next month and is therefore not due.
func (d *Debt) DueIn(year int, month time.Month) bool {
	due := time.Date(year, month, d.DueDay, 0, 0, 0, 0, time.UTC)
	return due.Year() == year && due.Month() == month
}
