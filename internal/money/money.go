// Package money converts between the int64 cent amounts stored internally
// and the two-fraction-digit decimal strings used on the wire.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal amount string into cents.
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds half-up beyond the second fraction digit.
func Parse(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Format renders cents as a decimal string with exactly two fraction digits.
func Format(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
