package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a dated income or expense record in a user's ledger.
//
// Type is independent of the referenced category's type: an income
// transaction may point at an expense category. The model deliberately does
// not enforce consistency between the two.
type Transaction struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Amount       int64 // Amount in cents
	Type         Type
	CategoryID   *uuid.UUID
	CategoryName string // Loaded via JOIN
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

var ErrNotFound = errors.New("transaction not found")
