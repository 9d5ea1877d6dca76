package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"budgetscope/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, owner_id, is_default, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Type,
		c.OwnerID,
		c.IsDefault,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `
		SELECT id, name, type, owner_id, is_default, created_at
		FROM categories
		WHERE id = $1
	`

	var c category.Category

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &typeStr, &c.OwnerID, &c.IsDefault, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}

// ListCategories returns the owner's categories plus global defaults.
func (s *Store) ListCategories(ctx context.Context, owner uuid.UUID, typ *category.Type) ([]*category.Category, error) {
	query := `
		SELECT id, name, type, owner_id, is_default, created_at
		FROM categories
		WHERE (owner_id = $1 OR is_default)
	`

	args := []any{owner}

	if typ != nil {
		query += " AND type = $2"

		args = append(args, *typ)
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		if err := rows.Scan(&c.ID, &c.Name, &typeStr, &c.OwnerID, &c.IsDefault, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Type = category.Type(typeStr)
		cats = append(cats, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

// EnsureCategory inserts the category unless the same (name, owner, type)
// already exists. The unique index treats NULL owners as equal, so global
// defaults are deduplicated too.
func (s *Store) EnsureCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, type, owner_id, is_default, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (name, owner_id, type) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, c.Name, c.Type, c.OwnerID, c.IsDefault)
	if err != nil {
		return fmt.Errorf("ensuring category: %w", err)
	}

	return nil
}
