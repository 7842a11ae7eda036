package budget

import (
	"strings"

	"github.com/google/uuid"
)

// DebtPrefix marks a budget category label that plans a payment towards a debt.
const DebtPrefix = "Dívida: "

// DefaultCategories are offered when adding a budget line.
var DefaultCategories = []string{
	"Receitas",
	"Moradia",
	"Alimentação",
	"Transporte",
	"Saúde",
	"Educação",
	"Lazer",
	"Outros",
}

type CategoryKind int

const (
	CategoryStandard CategoryKind = iota
	CategoryDebt
)

// Category is the parsed form of a free-form budget label.
// DebtID is set only once the label has been matched against a known debt.
type Category struct {
	Kind   CategoryKind
	Name   string
	DebtID uuid.UUID
}

func StandardCategory(name string) Category {
	return Category{Kind: CategoryStandard, Name: strings.TrimSpace(name)}
}

func DebtCategory(debtID uuid.UUID, name string) Category {
	return Category{Kind: CategoryDebt, Name: strings.TrimSpace(name), DebtID: debtID}
}

// ParseCategory reads a stored label. Labels with DebtPrefix become debt categories.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	if name, ok := strings.CutPrefix(label, DebtPrefix); ok {
		return Category{Kind: CategoryDebt, Name: strings.TrimSpace(name)}
	}

	return StandardCategory(label)
}

// Label is the stored form of the category.
func (c Category) Label() string {
	if c.Kind == CategoryDebt {
		return DebtPrefix + c.Name
	}

	return c.Name
}

func (c Category) IsDebt() bool { return c.Kind == CategoryDebt }

// Same reports whether two categories refer to the same budget line.
func (c Category) Same(other Category) bool {
	if c.Kind != other.Kind {
		return false
	}

	if c.Kind == CategoryDebt && c.DebtID != uuid.Nil && other.DebtID != uuid.Nil {
		return c.DebtID == other.DebtID
	}

	return c.Name == other.Name
}

// ResolveDebt fills DebtID from the given debt names, matching by name.
func (c Category) ResolveDebt(debtIDs map[string]uuid.UUID) Category {
	if c.Kind != CategoryDebt || c.DebtID != uuid.Nil {
		return c
	}

	if id, ok := debtIDs[c.Name]; ok {
		c.DebtID = id
	}

	return c
}
