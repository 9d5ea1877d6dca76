package transaction

import (
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/money"
	"budgetscope/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	Amount       string           `json:"amount"`
	Type         transaction.Type `json:"type"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Amount:       money.Format(tx.Amount),
		Type:         tx.Type,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Description:  tx.Description,
		Date:         tx.Date.Format(time.DateOnly),
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
