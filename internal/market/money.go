package market

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParsePrice turns user input like "10", "10.50" or "10,50" into cents.
// Rejects non-numeric input, zero or negative values, and sub-cent
// precision.
func ParsePrice(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", ErrInvalidInput, s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: price has more than two decimal places", ErrInvalidInput)
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as "12.34" for display and for the
// payment provider's amount field.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}
