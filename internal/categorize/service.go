// Package categorize suggests categories for transactions based on
// user-defined description patterns.
package categorize

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// FindCategory returns the category matched by the longest pattern
	// contained in the description, or uuid.Nil when no rule matches.
	FindCategory(ctx context.Context, owner uuid.UUID, description string) (uuid.UUID, error)
	CreateRule(ctx context.Context, owner uuid.UUID, pattern string, categoryID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category for a transaction description, or uuid.Nil
// when no rule applies.
func (s *Service) Suggest(ctx context.Context, owner uuid.UUID, description string) (uuid.UUID, error) {
	return s.repo.FindCategory(ctx, owner, description)
}

// Learn records a new pattern-to-category rule for the owner.
func (s *Service) Learn(ctx context.Context, owner uuid.UUID, pattern string, categoryID uuid.UUID) error {
	return s.repo.CreateRule(ctx, owner, pattern, categoryID)
}
