// Package summary computes period-level income/expense totals from the
// transaction ledger.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/period"
	"budgetscope/internal/transaction"
)

// Summary holds one calendar month's totals. RemainingBalance is derived
// from the two sums at computation time, never stored.
type Summary struct {
	Period           period.Period
	TotalIncome      int64
	TotalExpense     int64
	RemainingBalance int64
}

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=summary

// Ledger is the read-only view of the transaction ledger the aggregator needs.
type Ledger interface {
	SumByType(ctx context.Context, owner uuid.UUID, typ transaction.Type, p period.Period) (int64, error)
}

type Service struct {
	ledger Ledger
	now    func() time.Time
}

// NewService returns a summary aggregator. The clock decides the default
// period when the caller supplies none.
func NewService(ledger Ledger, now func() time.Time) *Service {
	return &Service{ledger: ledger, now: now}
}

// Summarize totals the owner's income and expenses for the given period,
// defaulting to the current calendar month when p is nil.
func (s *Service) Summarize(ctx context.Context, owner uuid.UUID, p *period.Period) (*Summary, error) {
	var win period.Period
	if p != nil {
		win = *p
	} else {
		win = period.Of(s.now())
	}

	if err := win.Validate(); err != nil {
		return nil, err
	}

	income, err := s.ledger.SumByType(ctx, owner, transaction.TypeIncome, win)
	if err != nil {
		return nil, fmt.Errorf("summing income: %w", err)
	}

	expense, err := s.ledger.SumByType(ctx, owner, transaction.TypeExpense, win)
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}

	return &Summary{
		Period:           win,
		TotalIncome:      income,
		TotalExpense:     expense,
		RemainingBalance: income - expense,
	}, nil
}
