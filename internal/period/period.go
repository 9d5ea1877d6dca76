// Package period models a calendar-month aggregation window.
package period

import (
	"fmt"
	"time"
)

// Period identifies a single calendar month.
type Period struct {
	Month int // 1-12
	Year  int
}

// Of returns the period containing the given instant.
func Of(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Validate checks that the month is in [1,12] and the year is positive.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month %d out of range", p.Month)
	}

	if p.Year < 1 {
		return fmt.Errorf("year %d out of range", p.Year)
	}

	return nil
}

// Bounds returns the half-open UTC interval [start, end) covering the month.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether the given date falls inside the month.
func (p Period) Contains(t time.Time) bool {
	return int(t.Month()) == p.Month && t.Year() == p.Year
}

func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}
