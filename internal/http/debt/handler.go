package debt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/debt"
	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
	"github.com/MrJamesThe3rd/budgetly/internal/http/response"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}", h.update)
}

type debtRequest struct {
	Name                string          `json:"name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	MinimumPayment      decimal.Decimal `json:"minimum_payment"`
	DueDay              int             `json:"due_day"`
	Strategy            debt.Strategy   `json:"priority_strategy"`
	Status              debt.Status     `json:"status"`
	Notes               string          `json:"notes"`
}

func (req debtRequest) params(ownerID uuid.UUID) debt.Params {
	return debt.Params{
		OwnerID:             ownerID,
		Name:                req.Name,
		TotalAmount:         req.TotalAmount,
		MonthlyInterestRate: req.MonthlyInterestRate,
		MinimumPayment:      req.MinimumPayment,
		DueDay:              req.DueDay,
		Strategy:            req.Strategy,
		Status:              req.Status,
		Notes:               req.Notes,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.svc.Create(r.Context(), req.params(ownerID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())
	filter := debt.ListFilter{OwnerID: ownerID, OrderBy: debt.OrderNewest}
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		filter.Status = new(debt.Status(s))
	}

	switch debt.Order(q.Get("order")) {
	case "", debt.OrderNewest:
	case debt.OrderLargestDebt:
		filter.OrderBy = debt.OrderLargestDebt
	default:
		response.Error(w, http.StatusBadRequest, "invalid order")
		return
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}

		filter.Limit = n
	}

	debts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Internal(w, "failed to list debts", err)
		return
	}

	response.JSON(w, http.StatusOK, ToResponseList(debts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	current, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Fields absent from the body keep their current value.
	req := debtRequest{
		Name:                current.Name,
		TotalAmount:         current.TotalAmount,
		MonthlyInterestRate: current.MonthlyInterestRate,
		MinimumPayment:      current.MinimumPayment,
		DueDay:              current.DueDay,
		Strategy:            current.Strategy,
		Status:              current.Status,
		Notes:               current.Notes,
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.svc.Update(r.Context(), id, req.params(ownerID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, debt.ErrInvalid):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, debt.ErrNotFound):
		response.Error(w, http.StatusNotFound, "debt not found")
	default:
		response.Internal(w, "debt request failed", err)
	}
}
