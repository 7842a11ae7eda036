package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

var owner = uuid.New()

func setup(t *testing.T) (http.Handler, *transaction.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), owner)))
		})
	})
	r.Route("/transactions", NewHandler(transaction.NewService(repo, nil)).Routes)

	return r, repo
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestCreate(t *testing.T) {
	h, repo := setup(t)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, owner, tx.OwnerID)
			assert.Equal(t, "Aluguel", tx.Description)
			assert.True(t, decimal.RequireFromString("-1200.50").Equal(tx.Amount))
			assert.Equal(t, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), tx.Date)

			tx.ID = uuid.New()

			return nil
		})

	rec := do(h, http.MethodPost, "/transactions/",
		`{"date":"2024-04-05","description":"Aluguel","category":"fixed_expense","subcategory":"Moradia","amount":"-1200.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "2024-04-05", got.Date)
	assert.Equal(t, transaction.CategoryFixedExpense, got.Category)
}

func TestCreate_Invalid(t *testing.T) {
	h, _ := setup(t)

	tests := map[string]string{
		"bad json":         `{`,
		"bad date":         `{"date":"05/04/2024","description":"x","category":"income","amount":"1"}`,
		"unknown category": `{"date":"2024-04-05","description":"x","category":"gift","amount":"1"}`,
		"no description":   `{"date":"2024-04-05","description":"  ","category":"income","amount":"1"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/transactions/", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestList_Filters(t *testing.T) {
	h, repo := setup(t)
	debtID := uuid.New()

	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Equal(t, owner, f.OwnerID)
			require.NotNil(t, f.Category)
			assert.Equal(t, transaction.CategoryDebtPayment, *f.Category)
			require.NotNil(t, f.DebtID)
			assert.Equal(t, debtID, *f.DebtID)
			require.NotNil(t, f.StartDate)
			assert.Equal(t, 3, f.Limit)

			return []*transaction.Transaction{{ID: uuid.New(), Category: transaction.CategoryDebtPayment}}, nil
		})

	rec := do(h, http.MethodGet, "/transactions/?category=debt_payment&debt_id="+debtID.String()+"&start_date=2024-04-01&limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestList_BadCategory(t *testing.T) {
	h, _ := setup(t)

	rec := do(h, http.MethodGet, "/transactions/?category=gift", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_NotFound(t *testing.T) {
	h, repo := setup(t)
	id := uuid.New()

	repo.EXPECT().GetTransaction(gomock.Any(), owner, id).Return(nil, transaction.ErrNotFound)

	rec := do(h, http.MethodGet, "/transactions/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate(t *testing.T) {
	h, repo := setup(t)
	id := uuid.New()

	repo.EXPECT().GetTransaction(gomock.Any(), owner, id).Return(&transaction.Transaction{
		ID: id, OwnerID: owner, Description: "Mercado", Category: transaction.CategoryVariableExpense,
		Amount: decimal.NewFromInt(-100), Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, "Alimentação", tx.Subcategory)
			assert.True(t, decimal.NewFromInt(-120).Equal(tx.Amount))
			assert.Equal(t, "Mercado", tx.Description)

			return nil
		})

	rec := do(h, http.MethodPatch, "/transactions/"+id.String(), `{"subcategory":"Alimentação","amount":"-120"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDelete(t *testing.T) {
	h, repo := setup(t)
	id := uuid.New()

	repo.EXPECT().DeleteTransaction(gomock.Any(), owner, id).Return(nil)

	rec := do(h, http.MethodDelete, "/transactions/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, http.MethodDelete, "/transactions/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
