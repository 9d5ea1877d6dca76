package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"budgetscope/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, owner_id, category_id, category_name, amount,
// month, year, created_at, updated_at.
func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	if err := s.Scan(
		&b.ID, &b.OwnerID, &b.CategoryID, &b.CategoryName,
		&b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

const selectBudgetColumns = `
	b.id, b.owner_id, b.category_id, c.name as category_name,
	b.amount, b.month, b.year, b.created_at, b.updated_at
`

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (owner_id, category_id, amount, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.OwnerID,
		b.CategoryID,
		b.Amount,
		b.Month,
		b.Year,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return budget.ErrDuplicate
		}

		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, owner, id uuid.UUID) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1 AND b.owner_id = $2`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET category_id = $1, amount = $2, month = $3, year = $4, updated_at = NOW()
		WHERE id = $5 AND owner_id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		b.CategoryID,
		b.Amount,
		b.Month,
		b.Year,
		b.ID,
		b.OwnerID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return budget.ErrDuplicate
		}

		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, owner, id uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1 AND owner_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return budget.ErrNotFound
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, owner uuid.UUID, filter budget.ListFilter) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.owner_id = $1`

	args := []any{owner}

	argIdx := 2

	if filter.Month != nil {
		query += fmt.Sprintf(" AND b.month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND b.year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	query += " ORDER BY b.year DESC, b.month DESC, c.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}
