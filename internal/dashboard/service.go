// Package dashboard composes the current month's summary, the most recent
// transactions, and the current month's budget reports into a single view.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/budget"
	"budgetscope/internal/period"
	"budgetscope/internal/summary"
	"budgetscope/internal/transaction"
)

// recentLimit bounds the recent-transactions slice of the overview.
const recentLimit = 5

//go:generate mockgen -source=service.go -destination=service_mock.go -package=dashboard

type Summarizer interface {
	Summarize(ctx context.Context, owner uuid.UUID, p *period.Period) (*summary.Summary, error)
}

type Ledger interface {
	Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*transaction.Transaction, error)
}

type BudgetReporter interface {
	ListReports(ctx context.Context, owner uuid.UUID, filter budget.ListFilter) ([]*budget.Report, error)
}

// Overview is the dashboard payload: all values are recomputed from the
// ledger on every call.
type Overview struct {
	Summary            *summary.Summary
	RecentTransactions []*transaction.Transaction
	Budgets            []*budget.Report
}

type Service struct {
	summaries Summarizer
	ledger    Ledger
	budgets   BudgetReporter
	now       func() time.Time
}

func NewService(summaries Summarizer, ledger Ledger, budgets BudgetReporter, now func() time.Time) *Service {
	return &Service{
		summaries: summaries,
		ledger:    ledger,
		budgets:   budgets,
		now:       now,
	}
}

// Overview assembles the owner's dashboard for the current calendar month.
func (s *Service) Overview(ctx context.Context, owner uuid.UUID) (*Overview, error) {
	p := period.Of(s.now())

	sum, err := s.summaries.Summarize(ctx, owner, &p)
	if err != nil {
		return nil, fmt.Errorf("summarizing month: %w", err)
	}

	recent, err := s.ledger.Recent(ctx, owner, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}

	reports, err := s.budgets.ListReports(ctx, owner, budget.ListFilter{Month: &p.Month, Year: &p.Year})
	if err != nil {
		return nil, fmt.Errorf("listing budget reports: %w", err)
	}

	return &Overview{
		Summary:            sum,
		RecentTransactions: recent,
		Budgets:            reports,
	}, nil
}
