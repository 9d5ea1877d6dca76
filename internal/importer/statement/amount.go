package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a statement amount string into cents. It accepts both
// separator conventions: "1,234.56" and "1.234,56" both yield 123456.
// When both separators are present, the rightmost one is the decimal point
// and the other is dropped as a thousands separator. A lone comma is treated
// as the decimal separator ("10,50" -> 1050).
func parseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.TrimSuffix(clean, "€")
	clean = strings.TrimPrefix(clean, "$")

	dot := strings.LastIndex(clean, ".")
	comma := strings.LastIndex(clean, ",")

	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case dot >= 0 && comma >= 0:
		clean = strings.ReplaceAll(clean, ",", "")
	case comma >= 0:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
