package overview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgetly/internal/budget"
	"github.com/MrJamesThe3rd/budgetly/internal/http/auth"
	"github.com/MrJamesThe3rd/budgetly/internal/http/response"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/period"
	"github.com/MrJamesThe3rd/budgetly/internal/report"
)

type Handler struct {
	svc     *overview.Service
	budgets *budget.Service
	now     func() time.Time
}

func NewHandler(svc *overview.Service, budgets *budget.Service) *Handler {
	return &Handler{svc: svc, budgets: budgets, now: time.Now}
}

func (h *Handler) DashboardRoutes(r chi.Router) {
	r.Get("/", h.dashboard)
	r.Get("/summary", h.summary)
}

func (h *Handler) BudgetRoutes(r chi.Router) {
	r.Get("/", h.budgetView)
	r.Post("/", h.addCategory)
	r.Get("/categories", h.categories)
	r.Get("/report", h.report)
	r.Put("/rows/{ref}", h.savePlannedAmount)
	r.Delete("/{id}", h.deleteItem)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	d, err := h.svc.GetDashboard(r.Context(), ownerID, h.now())
	if err != nil {
		response.Internal(w, "failed to load dashboard", err)
		return
	}

	response.JSON(w, http.StatusOK, toDashboardResponse(d))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	s, err := h.svc.GetDashboardSummary(r.Context(), ownerID, h.now())
	if err != nil {
		response.Internal(w, "failed to load dashboard summary", err)
		return
	}

	response.JSON(w, http.StatusOK, toSummaryResponse(s))
}

// periodFromQuery reads month and year, defaulting each to the current month.
func (h *Handler) periodFromQuery(r *http.Request) (period.Period, error) {
	current := period.Of(h.now())
	month, year := int(current.Month), current.Year

	if s := r.URL.Query().Get("month"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return period.Period{}, err
		}

		month = n
	}

	if s := r.URL.Query().Get("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return period.Period{}, err
		}

		year = n
	}

	return period.New(year, month)
}

func (h *Handler) budgetView(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	p, err := h.periodFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid month or year")
		return
	}

	view, err := h.svc.GetBudgetView(r.Context(), ownerID, p)
	if err != nil {
		slog.Error("failed to load budget", "period", p.String(), "error", err)
		response.JSON(w, http.StatusInternalServerError, emptyBudgetView(p, "failed to load budget"))

		return
	}

	response.JSON(w, http.StatusOK, toBudgetViewResponse(view))
}

// report downloads the budget view of the requested period as PDF or CSV.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.periodFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid month or year")
		return
	}

	view, err := h.svc.GetBudgetView(r.Context(), ownerID, p)
	if err != nil {
		response.Internal(w, "failed to load budget", err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, view); err != nil {
		response.Internal(w, "failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(view)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

type savePlannedAmountRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) savePlannedAmount(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	ref, err := overview.ParseRowRef(chi.URLParam(r, "ref"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid row reference")
		return
	}

	p, err := h.periodFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid month or year")
		return
	}

	var req savePlannedAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.svc.SavePlannedAmount(r.Context(), ownerID, p, ref, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toItemResponse(item))
}

type addCategoryRequest struct {
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	var req addCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := period.New(req.Year, req.Month)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.svc.AddBudgetCategory(r.Context(), ownerID, p, req.Category, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toItemResponse(item))
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	cats, err := h.svc.BudgetCategories(r.Context(), ownerID)
	if err != nil {
		response.Internal(w, "failed to list budget categories", err)
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toCategoryResponse(c)
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := auth.OwnerFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.budgets.Delete(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *overview.ValidationError

	switch {
	case errors.As(err, &vErr):
		response.Error(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, budget.ErrInvalid):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, budget.ErrNotFound):
		response.Error(w, http.StatusNotFound, "budget item not found")
	default:
		response.Internal(w, "budget request failed", err)
	}
}
