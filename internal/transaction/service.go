package transaction

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, owner, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, owner, id uuid.UUID) error

	ListTransactions(ctx context.Context, owner uuid.UUID, filter ListFilter) ([]*Transaction, error)

	// SumExpenses totals the owner's expense transactions for one category
	// within the period. Returns 0 when nothing matches.
	SumExpenses(ctx context.Context, owner, categoryID uuid.UUID, p period.Period) (int64, error)

	// SumByType totals the owner's transactions of the given type within
	// the period. Returns 0 when nothing matches.
	SumByType(ctx context.Context, owner uuid.UUID, typ Type, p period.Period) (int64, error)

	BeginImport(ctx context.Context, owner uuid.UUID, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	OwnerID     uuid.UUID
	Amount      int64
	Type        Type
	CategoryID  *uuid.UUID
	Description string
	Date        time.Time
}

type ListFilter struct {
	Type       *Type
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("invalid transaction type %q", params.Type)
	}

	tx := &Transaction{
		OwnerID:     params.OwnerID,
		Amount:      params.Amount,
		Type:        params.Type,
		CategoryID:  params.CategoryID,
		Description: params.Description,
		Date:        params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, owner, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, owner, id)
}

func (s *Service) List(ctx context.Context, owner uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, owner, filter)
}

// Recent returns the owner's most recent transactions ordered by date,
// breaking ties on creation time.
// Recent returns the owner's latest transactions, newest first: by date,
// then by creation time for transactions on the same date. At most limit
// transactions are returned.
func (s *Service) Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, owner, ListFilter{Limit: limit})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(txs, func(a, b *Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}

	return txs, nil
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if !tx.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", tx.Type)
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, owner, id)
}

type ImportResult struct {
	Imported  []*Transaction
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Transaction
}

// ImportBatch inserts a batch of parsed statement rows for one owner,
// refusing the whole batch when any row duplicates an existing transaction
// on (date, amount, type, description). Conflicts are reported back so the
// caller can confirm the non-duplicate remainder via CreateBatch.
func (s *Service) ImportBatch(ctx context.Context, owner uuid.UUID, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, owner, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	type dupKey struct {
		Date        string
		Amount      int64
		Type        Type
		Description string
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))

	for _, d := range duplicates {
		k := dupKey{
			Date:        d.Date.Format(time.DateOnly),
			Amount:      d.Amount,
			Type:        d.Type,
			Description: d.Description,
		}
		lookup[k] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		k := dupKey{
			Date:        p.Date.Format(time.DateOnly),
			Amount:      p.Amount,
			Type:        p.Type,
			Description: p.Description,
		}

		existing, found := lookup[k]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs := paramsToTransactions(owner, newParams)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch inserts the given rows without duplicate checking.
func (s *Service) CreateBatch(ctx context.Context, owner uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginImport(ctx, owner, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	txs := paramsToTransactions(owner, params)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}

func dateRange(params []CreateParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}

func paramsToTransactions(owner uuid.UUID, params []CreateParams) []*Transaction {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			OwnerID:     owner,
			Amount:      p.Amount,
			Type:        p.Type,
			CategoryID:  p.CategoryID,
			Description: p.Description,
			Date:        p.Date,
		}
	}

	return txs
}
