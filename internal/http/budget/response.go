package budget

import (
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/budget"
	"budgetscope/internal/money"
)

type reportResponse struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	Amount          string     `json:"amount"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	SpentAmount     string     `json:"spent_amount"`
	RemainingAmount string     `json:"remaining_amount"`
	PercentageUsed  float64    `json:"percentage_used"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func toReportResponse(r *budget.Report) reportResponse {
	return reportResponse{
		ID:              r.Budget.ID,
		CategoryID:      r.Budget.CategoryID,
		CategoryName:    r.Budget.CategoryName,
		Amount:          money.Format(r.Budget.Amount),
		Month:           r.Budget.Month,
		Year:            r.Budget.Year,
		SpentAmount:     money.Format(r.SpentAmount),
		RemainingAmount: money.Format(r.RemainingAmount),
		PercentageUsed:  r.PercentageUsed,
		CreatedAt:       r.Budget.CreatedAt,
		UpdatedAt:       r.Budget.UpdatedAt,
	}
}

func toReportResponseList(reports []*budget.Report) []reportResponse {
	resp := make([]reportResponse, len(reports))
	for i, r := range reports {
		resp[i] = toReportResponse(r)
	}

	return resp
}
