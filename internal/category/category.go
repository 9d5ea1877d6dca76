package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the kind of cash flow a category groups.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known category types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a named income/expense bucket. A nil OwnerID marks a
// global default category visible to every user.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	OwnerID   *uuid.UUID
	IsDefault bool
	CreatedAt time.Time
}

var ErrNotFound = errors.New("category not found")
