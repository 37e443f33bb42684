package calculation

import "github.com/shopspring/decimal"

// DivisionPrecision is the number of decimal digits carried through divisions
// before the final rounding to cents. It is threaded explicitly into every
// DivRound call; there is no process-wide decimal context.
const DivisionPrecision int32 = 28

// RoundCents rounds a monetary value to 2 decimal places using commercial
// rounding: a midpoint (0.005) rounds away from zero toward the next cent,
// not to the nearest even digit.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
