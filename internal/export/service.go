package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"budgetscope/internal/money"
	"budgetscope/internal/transaction"
)

// csvHeader is the first row of every export file.
var csvHeader = []string{"date", "description", "category", "type", "amount"}

// Lister fetches the transactions to export.
type Lister interface {
	List(ctx context.Context, owner uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// Service writes an owner's transactions as CSV.
type Service struct {
	transactions Lister
}

func NewService(transactions Lister) *Service {
	return &Service{transactions: transactions}
}

// ExportCSV streams the transactions matching the filter to w, most recent
// first. Amounts are formatted with two decimal places; expenses carry a
// leading minus so the file round-trips through the statement importer.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, owner uuid.UUID, filter transaction.ListFilter) error {
	txs, err := s.transactions.List(ctx, owner, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range txs {
		amount := t.Amount
		if t.Type == transaction.TypeExpense {
			amount = -amount
		}

		row := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.CategoryName,
			string(t.Type),
			money.Format(amount),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
