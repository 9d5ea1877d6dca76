package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"budgetscope/internal/dashboard"
	"budgetscope/internal/http/owner"
	"budgetscope/internal/money"
	"budgetscope/internal/transaction"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type overviewResponse struct {
	Summary            summaryResponse       `json:"summary"`
	RecentTransactions []transactionResponse `json:"recent_transactions"`
	Budgets            []budgetResponse      `json:"budgets"`
}

type summaryResponse struct {
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	RemainingBalance string `json:"remaining_balance"`
}

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	Amount       string           `json:"amount"`
	Type         transaction.Type `json:"type"`
	CategoryName string           `json:"category_name,omitempty"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
}

type budgetResponse struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	Amount          string    `json:"amount"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	SpentAmount     string    `json:"spent_amount"`
	RemainingAmount string    `json:"remaining_amount"`
	PercentageUsed  float64   `json:"percentage_used"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context(), owner.FromContext(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := overviewResponse{
		Summary: summaryResponse{
			Month:            ov.Summary.Period.Month,
			Year:             ov.Summary.Period.Year,
			TotalIncome:      money.Format(ov.Summary.TotalIncome),
			TotalExpense:     money.Format(ov.Summary.TotalExpense),
			RemainingBalance: money.Format(ov.Summary.RemainingBalance),
		},
		RecentTransactions: make([]transactionResponse, len(ov.RecentTransactions)),
		Budgets:            make([]budgetResponse, len(ov.Budgets)),
	}

	for i, tx := range ov.RecentTransactions {
		resp.RecentTransactions[i] = transactionResponse{
			ID:           tx.ID,
			Amount:       money.Format(tx.Amount),
			Type:         tx.Type,
			CategoryName: tx.CategoryName,
			Description:  tx.Description,
			Date:         tx.Date.Format(time.DateOnly),
		}
	}

	for i, b := range ov.Budgets {
		resp.Budgets[i] = budgetResponse{
			ID:              b.Budget.ID,
			CategoryID:      b.Budget.CategoryID,
			CategoryName:    b.Budget.CategoryName,
			Amount:          money.Format(b.Budget.Amount),
			Month:           b.Budget.Month,
			Year:            b.Budget.Year,
			SpentAmount:     money.Format(b.SpentAmount),
			RemainingAmount: money.Format(b.RemainingAmount),
			PercentageUsed:  b.PercentageUsed,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
