package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCategory(ctx context.Context, owner uuid.UUID, description string) (uuid.UUID, error) {
	query := `
		SELECT category_id
		FROM category_rules
		WHERE owner_id = $1 AND $2 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var categoryID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, owner, description).Scan(&categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, nil
		}

		return uuid.Nil, fmt.Errorf("finding category rule: %w", err)
	}

	return categoryID, nil
}

func (s *Store) CreateRule(ctx context.Context, owner uuid.UUID, pattern string, categoryID uuid.UUID) error {
	query := `
		INSERT INTO category_rules (owner_id, pattern, category_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, owner, pattern, categoryID)
	if err != nil {
		return fmt.Errorf("creating category rule: %w", err)
	}

	return nil
}
