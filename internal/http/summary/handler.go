package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"budgetscope/internal/http/owner"
	"budgetscope/internal/money"
	"budgetscope/internal/period"
	"budgetscope/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type summaryResponse struct {
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	RemainingBalance string `json:"remaining_balance"`
}

// get summarizes one month's activity. Without month/year query params it
// covers the current month.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	var p *period.Period

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	// A period is only explicit when both parts are supplied; a lone
	// month or year falls back to the current month.
	if monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		p = &period.Period{Month: month, Year: year}
	}

	sum, err := h.svc.Summarize(r.Context(), owner.FromContext(r.Context()), p)
	if err != nil {
		if p != nil && p.Validate() != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(sum)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(s *summary.Summary) summaryResponse {
	return summaryResponse{
		Month:            s.Period.Month,
		Year:             s.Period.Year,
		TotalIncome:      money.Format(s.TotalIncome),
		TotalExpense:     money.Format(s.TotalExpense),
		RemainingBalance: money.Format(s.RemainingBalance),
	}
}
