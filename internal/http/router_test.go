package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	apiHttp "github.com/MrJamesThe3rd/budgetly/internal/http"
	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
	debtHandler "github.com/MrJamesThe3rd/budgetly/internal/http/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/http/metrics"
	overviewHandler "github.com/MrJamesThe3rd/budgetly/internal/http/overview"
	txHandler "github.com/MrJamesThe3rd/budgetly/internal/http/transaction"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

var secret = []byte("router-secret")

func newRouter(t *testing.T) (http.Handler, *debt.MockRepository) {
	m, err := metrics.New()
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	debtRepo := debt.NewMockRepository(ctrl)

	debtSvc := debt.NewService(debtRepo)
	txSvc := transaction.NewService(transaction.NewMockRepository(ctrl), debtSvc)
	overviewSvc := overview.NewService(overview.NewMockTransactionReader(ctrl), overview.NewMockDebtReader(ctrl), overview.NewMockBudgetStore(ctrl))

	router := apiHttp.New(
		apiHttp.Options{JWTSecret: secret, AllowedOrigins: []string{"https://app.example"}, Metrics: m},
		overviewHandler.NewHandler(overviewSvc, budget.NewService(budget.NewMockRepository(ctrl))),
		txHandler.NewHandler(txSvc),
		debtHandler.NewHandler(debtSvc),
	)

	return router, debtRepo
}

func TestRouter_RequiresToken(t *testing.T) {
	router, _ := newRouter(t)

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/budget", "/api/v1/transactions", "/api/v1/debts"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_ScopesRequestsToTokenOwner(t *testing.T) {
	router, debtRepo := newRouter(t)
	owner := uuid.New()

	token, err := auth.NewToken(secret, owner, time.Minute)
	require.NoError(t, err)

	debtRepo.EXPECT().ListDebts(gomock.Any(), debt.ListFilter{OwnerID: owner, OrderBy: debt.OrderNewest}).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/budget", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsArePublic(t *testing.T) {
	router, _ := newRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `requests_total{code="200",method="GET",route="/healthz"} 1`)
}
