package budget_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label    string
		wantKind budget.CategoryKind
		wantName string
	}{
		{label: "Moradia", wantKind: budget.CategoryStandard, wantName: "Moradia"},
		{label: "  Lazer ", wantKind: budget.CategoryStandard, wantName: "Lazer"},
		{label: "Dívida: Cartão", wantKind: budget.CategoryDebt, wantName: "Cartão"},
		{label: "Dívida:Cartão", wantKind: budget.CategoryStandard, wantName: "Dívida:Cartão"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := budget.ParseCategory(tt.label)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestCategory_LabelRoundTrip(t *testing.T) {
	for _, label := range []string{"Moradia", "Dívida: Financiamento carro"} {
		assert.Equal(t, label, budget.ParseCategory(label).Label())
	}
}

func TestCategory_Same(t *testing.T) {
	id := uuid.New()

	assert.True(t, budget.StandardCategory("Lazer").Same(budget.ParseCategory("Lazer")))
	assert.False(t, budget.StandardCategory("Cartão").Same(budget.DebtCategory(id, "Cartão")))
	assert.True(t, budget.DebtCategory(id, "Cartão").Same(budget.DebtCategory(id, "Cartão antigo")))
	assert.True(t, budget.DebtCategory(id, "Cartão").Same(budget.ParseCategory("Dívida: Cartão")))
}

func TestCategory_ResolveDebt(t *testing.T) {
	id := uuid.New()
	names := map[string]uuid.UUID{"Cartão": id}

	got := budget.ParseCategory("Dívida: Cartão").ResolveDebt(names)
	assert.Equal(t, id, got.DebtID)

	std := budget.ParseCategory("Cartão").ResolveDebt(names)
	assert.Equal(t, uuid.Nil, std.DebtID)
}
