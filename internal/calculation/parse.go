package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parsing is the only way values enter the calculator: callers hand over
// decimal strings, never binary floats, so no precision is lost before the
// arithmetic starts. The core itself stays permissive; range checks happen
// here at the boundary.

// ParseAmount parses a non-negative euro amount from its decimal string form.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := parseDecimal(field, s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must not be negative, got %s", field, d.String())
	}
	return d, nil
}

// ParseRate parses a non-negative rate (per mille or percent) from its
// decimal string form.
func ParseRate(field, s string) (decimal.Decimal, error) {
	return ParseAmount(field, s)
}

// ParseOptionalAmount parses an optional euro amount. An empty string means
// absent and yields nil; "0" is a present, legitimate value.
func ParseOptionalAmount(field, s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseAmount(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s is not a valid decimal number: %w", field, err)
	}
	return d, nil
}
