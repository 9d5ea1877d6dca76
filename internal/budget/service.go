package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"budgetscope/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, owner, id uuid.UUID) (*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, owner, id uuid.UUID) error
	ListBudgets(ctx context.Context, owner uuid.UUID, filter ListFilter) ([]*Budget, error)
}

// Ledger is the read-only view of the transaction ledger the tracker needs.
type Ledger interface {
	SumExpenses(ctx context.Context, owner, categoryID uuid.UUID, p period.Period) (int64, error)
}

type Service struct {
	repo   Repository
	ledger Ledger
}

func NewService(repo Repository, ledger Ledger) *Service {
	return &Service{repo: repo, ledger: ledger}
}

type CreateParams struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Amount     int64
	Month      int
	Year       int
}

type ListFilter struct {
	Month *int
	Year  *int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	p := period.Period{Month: params.Month, Year: params.Year}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if params.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	b := &Budget{
		OwnerID:    params.OwnerID,
		CategoryID: params.CategoryID,
		Amount:     params.Amount,
		Month:      params.Month,
		Year:       params.Year,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, owner, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, owner, id)
}

func (s *Service) Update(ctx context.Context, b *Budget) error {
	if err := b.Period().Validate(); err != nil {
		return err
	}

	if b.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}

	return s.repo.UpdateBudget(ctx, b)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, owner, id)
}

func (s *Service) List(ctx context.Context, owner uuid.UUID, filter ListFilter) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, owner, filter)
}

// Report computes the budget's derived metrics from the ledger.
//
// SpentAmount is the sum of the owner's expense transactions for the
// budget's category within its month; RemainingAmount may go negative when
// overspent; PercentageUsed is 0 for a zero cap rather than a division
// error.
func (s *Service) Report(ctx context.Context, b *Budget) (*Report, error) {
	spent, err := s.ledger.SumExpenses(ctx, b.OwnerID, b.CategoryID, b.Period())
	if err != nil {
		return nil, fmt.Errorf("summing spent amount: %w", err)
	}

	r := &Report{
		Budget:          b,
		SpentAmount:     spent,
		RemainingAmount: b.Amount - spent,
	}

	if b.Amount > 0 {
		r.PercentageUsed = float64(spent) / float64(b.Amount) * 100
	}

	return r, nil
}

// ListReports returns reports for every budget matching the filter.
func (s *Service) ListReports(ctx context.Context, owner uuid.UUID, filter ListFilter) ([]*Report, error) {
	budgets, err := s.repo.ListBudgets(ctx, owner, filter)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(budgets))

	for _, b := range budgets {
		r, err := s.Report(ctx, b)
		if err != nil {
			return nil, err
		}

		reports = append(reports, r)
	}

	return reports, nil
}
