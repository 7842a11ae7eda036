package overview

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
)

const syntheticRefPrefix = "temp-"

// RowRef identifies the budget line behind a row. Rows with spend but no plan
// have no item yet and are referenced by category instead.
type RowRef struct {
	ItemID   uuid.UUID
	Category string
}

func ItemRef(id uuid.UUID) RowRef { return RowRef{ItemID: id} }

func SyntheticRef(category string) RowRef { return RowRef{Category: category} }

// Synthesized reports whether saving a plan for this row must create a new item.
func (r RowRef) Synthesized() bool { return r.ItemID == uuid.Nil }

func (r RowRef) String() string {
	if r.Synthesized() {
		return syntheticRefPrefix + base64.RawURLEncoding.EncodeToString([]byte(r.Category))
	}

	return r.ItemID.String()
}

// ParseRowRef reads the form produced by RowRef.String.
func ParseRowRef(s string) (RowRef, error) {
	if rest, ok := strings.CutPrefix(s, syntheticRefPrefix); ok {
		raw, err := base64.RawURLEncoding.DecodeString(rest)
		if err != nil {
			return RowRef{}, fmt.Errorf("decoding row reference %q: %w", s, err)
		}

		category := string(raw)
		if strings.TrimSpace(category) == "" {
			return RowRef{}, fmt.Errorf("empty category in row reference %q", s)
		}

		return SyntheticRef(category), nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return RowRef{}, fmt.Errorf("parsing row reference %q: %w", s, err)
	}

	if id == uuid.Nil {
		return RowRef{}, fmt.Errorf("nil row reference")
	}

	return ItemRef(id), nil
}

// Row compares the plan of one category with what was actually spent.
type Row struct {
	Ref      RowRef
	Category budget.Category
	Planned  decimal.Decimal
	Actual   decimal.Decimal

	// Synthesized rows have actual spend and no budget item.
	Synthesized bool
	// Duplicate marks a second item for a category already listed; it never carries actuals.
	Duplicate bool
}

func (r Row) Label() string { return r.Category.Label() }

// Difference is planned minus actual; negative means overspent.
func (r Row) Difference() decimal.Decimal { return r.Planned.Sub(r.Actual) }

// Reconcile merges a period's budget items with its actuals.
//
// Items keep their store order and come first. Every actuals category without an
// item is appended as a synthesized row, sorted by label, so each category with
// spend appears in exactly one row.
func Reconcile(items []*budget.Item, actuals Actuals) []Row {
	normalized := make(map[string]decimal.Decimal, len(actuals))
	for k, v := range actuals {
		key := categoryKey(k)
		if key == "" {
			key = OtherCategory
		}

		normalized[key] = normalized[key].Add(v)
	}

	rows := make([]Row, 0, len(items)+len(normalized))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		cat := budget.ParseCategory(item.Category)
		key := cat.Label()

		row := Row{
			Ref:      ItemRef(item.ID),
			Category: cat,
			Planned:  item.PlannedAmount,
			Actual:   decimal.Zero,
		}

		if _, dup := seen[key]; dup {
			row.Duplicate = true
		} else {
			seen[key] = struct{}{}
			if v, ok := normalized[key]; ok {
				row.Actual = v
			}
		}

		rows = append(rows, row)
	}

	var missing []string

	for key := range normalized {
		if _, ok := seen[key]; !ok {
			missing = append(missing, key)
		}
	}

	slices.Sort(missing)

	for _, key := range missing {
		actual := normalized[key]
		rows = append(rows, Row{
			Ref:         SyntheticRef(key),
			Category:    budget.ParseCategory(key),
			Planned:     decimal.Zero,
			Actual:      actual,
			Synthesized: true,
		})
	}

	return rows
}

// ResolveDebts links debt-labelled rows to the debts they name.
func ResolveDebts(rows []Row, debts []*debt.Debt) {
	ids := make(map[string]uuid.UUID, len(debts))
	for _, d := range debts {
		if d != nil {
			ids[strings.TrimSpace(d.Name)] = d.ID
		}
	}

	for i := range rows {
		rows[i].Category = rows[i].Category.ResolveDebt(ids)
	}
}

// Totals are always derived from the rows they summarise.
type Totals struct {
	Planned decimal.Decimal
	Actual  decimal.Decimal
}

func (t Totals) Difference() decimal.Decimal { return t.Planned.Sub(t.Actual) }

func ComputeTotals(rows []Row) Totals {
	t := Totals{Planned: decimal.Zero, Actual: decimal.Zero}
	for _, r := range rows {
		t.Planned = t.Planned.Add(r.Planned)
		t.Actual = t.Actual.Add(r.Actual)
	}

	return t
}

// BudgetView is the reconciled budget of one period.
type BudgetView struct {
	Period period.Period
	Rows   []Row
	Totals Totals
}

// findItem returns the first item of the category, if any.
func findItem(items []*budget.Item, category budget.Category) *budget.Item {
	for _, item := range items {
		if item != nil && budget.ParseCategory(item.Category).Same(category) {
			return item
		}
	}

	return nil
}

func categoryKey(label string) string {
	return budget.ParseCategory(label).Label()
}
