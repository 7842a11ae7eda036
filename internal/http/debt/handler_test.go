package debt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
)

var owner = uuid.New()

func setup(t *testing.T) (http.Handler, *debt.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), owner)))
		})
	})
	r.Route("/debts", NewHandler(debt.NewService(repo)).Routes)

	return r, repo
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreate(t *testing.T) {
	h, repo := setup(t)

	repo.EXPECT().
		CreateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *debt.Debt) error {
			assert.Equal(t, owner, d.OwnerID)
			assert.Equal(t, debt.StrategyAvalanche, d.Strategy)
			assert.Equal(t, debt.StatusActive, d.Status)

			d.ID = uuid.New()

			return nil
		})

	rec := do(h, http.MethodPost, "/debts/", `{"name":"Cartão","total_amount":"4000","minimum_payment":"300","due_day":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Cartão", got.Name)
	assert.True(t, decimal.NewFromInt(4000).Equal(got.TotalAmount))
}

func TestCreate_Invalid(t *testing.T) {
	h, _ := setup(t)

	for name, body := range map[string]string{
		"no name":         `{"name":"","due_day":10}`,
		"due day too big": `{"name":"x","due_day":32}`,
		"bad status":      `{"name":"x","due_day":1,"status":"gone"}`,
		"negative total":  `{"name":"x","due_day":1,"total_amount":"-1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/debts/", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestList(t *testing.T) {
	h, repo := setup(t)

	repo.EXPECT().
		ListDebts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f debt.ListFilter) ([]*debt.Debt, error) {
			assert.Equal(t, debt.OrderLargestDebt, f.OrderBy)
			require.NotNil(t, f.Status)
			assert.Equal(t, debt.StatusActive, *f.Status)

			return nil, nil
		})

	rec := do(h, http.MethodGet, "/debts/?status=active&order=largest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(h, http.MethodGet, "/debts/?order=smallest", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_KeepsOmittedFields(t *testing.T) {
	h, repo := setup(t)
	id := uuid.New()

	current := &debt.Debt{
		ID: id, OwnerID: owner, Name: "Carro", TotalAmount: decimal.NewFromInt(20000),
		MinimumPayment: decimal.NewFromInt(800), DueDay: 15,
		Strategy: debt.StrategySnowball, Status: debt.StatusActive,
	}

	repo.EXPECT().GetDebt(gomock.Any(), owner, id).Return(current, nil).Times(2)
	repo.EXPECT().
		UpdateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *debt.Debt) error {
			assert.Equal(t, "Carro", d.Name)
			assert.Equal(t, debt.StatusNegotiated, d.Status)
			assert.Equal(t, debt.StrategySnowball, d.Strategy)
			assert.Equal(t, 15, d.DueDay)

			return nil
		})

	rec := do(h, http.MethodPatch, "/debts/"+id.String(), `{"status":"negotiated"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGet_NotFound(t *testing.T) {
	h, repo := setup(t)
	id := uuid.New()

	repo.EXPECT().GetDebt(gomock.Any(), owner, id).Return(nil, debt.ErrNotFound)

	rec := do(h, http.MethodGet, "/debts/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
