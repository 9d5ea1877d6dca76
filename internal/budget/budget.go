package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"budgetscope/internal/period"
)

// Budget is a monthly spending cap for one category. At most one budget
// exists per (owner, category, month, year).
type Budget struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string // Loaded via JOIN
	Amount       int64  // Cap in cents
	Month        int
	Year         int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Period returns the calendar month the budget covers.
func (b *Budget) Period() period.Period {
	return period.Period{Month: b.Month, Year: b.Year}
}

// Report is a budget with its derived metrics. Derived values are
// recomputed from the ledger on every read, never stored.
type Report struct {
	Budget          *Budget
	SpentAmount     int64
	RemainingAmount int64
	PercentageUsed  float64
}

var (
	ErrNotFound  = errors.New("budget not found")
	ErrDuplicate = errors.New("budget already exists for this category and month")
)
