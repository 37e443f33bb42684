package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEuro formats an amount in German locale convention: dot as thousands
// separator, comma as decimal separator, trailing euro sign. The sign of a
// negative amount goes before the formatted magnitude.
//
// Presentation only. Callers pass values that are already rounded to cents;
// nothing formatted here ever flows back into a calculation.
func FormatEuro(amount decimal.Decimal) string {
	return formatGerman(amount) + " €"
}

// FormatPerMille formats a Messzahl for display, e.g. "0,31 ‰".
func FormatPerMille(rate decimal.Decimal) string {
	return strings.ReplaceAll(rate.String(), ".", ",") + " ‰"
}

// FormatPercent formats a Hebesatz for display, e.g. "470 %".
func FormatPercent(rate decimal.Decimal) string {
	return strings.ReplaceAll(rate.String(), ".", ",") + " %"
}

func formatGerman(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	if amount.IsNegative() {
		sb.WriteByte('-')
	}

	// Group the integer digits in threes from the right.
	lead := len(whole) % 3
	if lead > 0 {
		sb.WriteString(whole[:lead])
		if len(whole) > lead {
			sb.WriteByte('.')
		}
	}
	for i := lead; i < len(whole); i += 3 {
		sb.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			sb.WriteByte('.')
		}
	}

	sb.WriteByte(',')
	sb.WriteString(frac)
	return sb.String()
}
