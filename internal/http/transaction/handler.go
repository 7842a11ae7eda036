package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
	"github.com/MrJamesThe3rd/budgetly/internal/http/response"
	"github.com/MrJamesThe3rd/budgetly/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}", h.update)
}

type createTransactionRequest struct {
	Date          string               `json:"date"`
	Description   string               `json:"description"`
	Category      transaction.Category `json:"category"`
	Subcategory   string               `json:"subcategory"`
	Amount        decimal.Decimal      `json:"amount"`
	AccountSource string               `json:"account_source"`
	DebtID        *uuid.UUID           `json:"debt_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		OwnerID:       ownerID,
		Date:          date,
		Description:   req.Description,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Amount:        req.Amount,
		AccountSource: req.AccountSource,
		DebtID:        req.DebtID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())
	filter := transaction.ListFilter{OwnerID: ownerID}
	q := r.URL.Query()

	if s := q.Get("category"); s != "" {
		c := transaction.Category(s)
		if !c.Valid() {
			response.Error(w, http.StatusBadRequest, "invalid category")
			return
		}

		filter.Category = &c
	}

	if s := q.Get("debt_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "invalid debt_id")
			return
		}

		filter.DebtID = &id
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}

		filter.Limit = n
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Internal(w, "failed to list transactions", err)
		return
	}

	response.JSON(w, http.StatusOK, ToResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(tx))
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

type updateTransactionRequest struct {
	Date          *string               `json:"date,omitempty"`
	Description   *string               `json:"description,omitempty"`
	Category      *transaction.Category `json:"category,omitempty"`
	Subcategory   *string               `json:"subcategory,omitempty"`
	Amount        *decimal.Decimal      `json:"amount,omitempty"`
	AccountSource *string               `json:"account_source,omitempty"`
	DebtID        *uuid.UUID            `json:"debt_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		tx.Date = date
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.Category != nil {
		tx.Category = *req.Category
	}

	if req.Subcategory != nil {
		tx.Subcategory = *req.Subcategory
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.AccountSource != nil {
		tx.AccountSource = *req.AccountSource
	}

	if req.DebtID != nil {
		tx.DebtID = req.DebtID
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(tx))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrInvalid):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, transaction.ErrNotFound):
		response.Error(w, http.StatusNotFound, "transaction not found")
	default:
		response.Internal(w, "transaction request failed", err)
	}
}
