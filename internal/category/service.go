package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)

	// ListCategories returns the owner's categories plus global defaults,
	// optionally restricted to one type.
	ListCategories(ctx context.Context, owner uuid.UUID, typ *Type) ([]*Category, error)

	// EnsureCategory inserts the category if no category with the same
	// (name, owner, type) exists yet.
	EnsureCategory(ctx context.Context, c *Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Type    Type
	OwnerID uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("invalid category type %q", params.Type)
	}

	owner := params.OwnerID
	c := &Category{
		Name:    params.Name,
		Type:    params.Type,
		OwnerID: &owner,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) List(ctx context.Context, owner uuid.UUID, typ *Type) ([]*Category, error) {
	if typ != nil && !typ.Valid() {
		return nil, fmt.Errorf("invalid category type %q", *typ)
	}

	return s.repo.ListCategories(ctx, owner, typ)
}

// EnsureDefaults seeds the global default categories. Safe to run repeatedly.
func (s *Service) EnsureDefaults(ctx context.Context, incomeNames, expenseNames []string) error {
	return s.ensure(ctx, nil, true, incomeNames, expenseNames)
}

// EnsureForOwner seeds personal copies of the default categories for one
// owner, typically at account creation. Safe to run repeatedly.
func (s *Service) EnsureForOwner(ctx context.Context, owner uuid.UUID, incomeNames, expenseNames []string) error {
	return s.ensure(ctx, &owner, false, incomeNames, expenseNames)
}

func (s *Service) ensure(ctx context.Context, owner *uuid.UUID, isDefault bool, incomeNames, expenseNames []string) error {
	seed := func(names []string, typ Type) error {
		for _, name := range names {
			c := &Category{
				Name:      name,
				Type:      typ,
				OwnerID:   owner,
				IsDefault: isDefault,
			}
			if err := s.repo.EnsureCategory(ctx, c); err != nil {
				return fmt.Errorf("ensuring category %q: %w", name, err)
			}
		}

		return nil
	}

	if err := seed(incomeNames, TypeIncome); err != nil {
		return err
	}

	return seed(expenseNames, TypeExpense)
}
