package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossin/grundsteuercheck/internal/domain"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func assertDecEqual(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	if !actual.Equal(decimal.RequireFromString(expected)) {
		t.Errorf("%s = %s, want %s", field, actual.String(), expected)
	}
}

// The reference case throughout: Grundsteuerwert 1.031.600 €, Messzahl 0,31 ‰,
// Hebesatz 470 %, four years until the next Hauptfeststellung.
func referenceAssessment(t *testing.T) domain.Assessment {
	t.Helper()
	return domain.Assessment{
		AssessedValue:        mustDec(t, "1031600"),
		RatePerMille:         mustDec(t, "0.31"),
		MunicipalRatePercent: mustDec(t, "470"),
		RemainingYears:       4,
	}
}

func TestCalculateReferenceScenario(t *testing.T) {
	engine := NewEngine()
	res := engine.Calculate(referenceAssessment(t))

	// 1031600 × 0.00031 × 4.70 = 1503.0412 -> 1503.04
	assertDecEqual(t, "1503.04", res.TaxCurrent, "TaxCurrent")
	// 1031600 / 1.4 = 736857.142857... -> 736857.14
	assertDecEqual(t, "736857.14", res.ThresholdValue, "ThresholdValue")
	// 736857.14 × 0.00031 × 4.70 = 1073.60085298 -> 1073.60
	assertDecEqual(t, "1073.60", res.TaxAtThreshold, "TaxAtThreshold")
	assertDecEqual(t, "429.44", res.SavingsPerYearAtThreshold, "SavingsPerYearAtThreshold")
	assertDecEqual(t, "1717.76", res.SavingsTotalAtThreshold, "SavingsTotalAtThreshold")

	assert.False(t, res.HasCustomScenario())
	assert.Nil(t, res.TaxAtCustom)
	assert.Nil(t, res.SavingsPerYearCustom)
	assert.Nil(t, res.SavingsTotalCustom)
}

func TestCalculateReferenceScenarioWithCustomValue(t *testing.T) {
	engine := NewEngine()

	a := referenceAssessment(t)
	a.CustomValue = decPtr(mustDec(t, "600000"))
	res := engine.Calculate(a)

	// Non-custom figures must be identical to the plain scenario.
	base := engine.Calculate(referenceAssessment(t))
	assert.True(t, res.TaxCurrent.Equal(base.TaxCurrent))
	assert.True(t, res.ThresholdValue.Equal(base.ThresholdValue))
	assert.True(t, res.TaxAtThreshold.Equal(base.TaxAtThreshold))
	assert.True(t, res.SavingsPerYearAtThreshold.Equal(base.SavingsPerYearAtThreshold))
	assert.True(t, res.SavingsTotalAtThreshold.Equal(base.SavingsTotalAtThreshold))

	require.True(t, res.HasCustomScenario())
	// 600000 × 0.00031 × 4.70 = 874.20
	assertDecEqual(t, "874.20", *res.TaxAtCustom, "TaxAtCustom")
	assertDecEqual(t, "628.84", *res.SavingsPerYearCustom, "SavingsPerYearCustom")
	assertDecEqual(t, "2515.36", *res.SavingsTotalCustom, "SavingsTotalCustom")
}

// Each tax figure is rounded to cents before the subtraction, so the savings
// can legitimately differ from a subtract-then-round result. With Messzahl
// 1 ‰ and Hebesatz 100 % the tax equals value/1000: 1.014 -> 1.01 and
// 0.006 -> 0.01 give savings of 1.00, while rounding the raw difference
// 1.008 would have given 1.01.
func TestCalculateRoundsBeforeSubtracting(t *testing.T) {
	engine := NewEngine()

	res := engine.Calculate(domain.Assessment{
		AssessedValue:        decimal.RequireFromString("1014"),
		RatePerMille:         decimal.NewFromInt(1),
		MunicipalRatePercent: decimal.NewFromInt(100),
		RemainingYears:       1,
		CustomValue:          decPtr(decimal.NewFromInt(6)),
	})

	assertDecEqual(t, "1.01", res.TaxCurrent, "TaxCurrent")
	require.True(t, res.HasCustomScenario())
	assertDecEqual(t, "0.01", *res.TaxAtCustom, "TaxAtCustom")
	assertDecEqual(t, "1.00", *res.SavingsPerYearCustom, "SavingsPerYearCustom")

	subtractThenRound := RoundCents(decimal.RequireFromString("1.014").Sub(decimal.RequireFromString("0.006")))
	assert.False(t, res.SavingsPerYearCustom.Equal(subtractThenRound),
		"expected rounding order to matter for this input")
}

func TestCalculateHalfUpMidpoint(t *testing.T) {
	engine := NewEngine()

	// Tax equals value/1000 here, so 12345 yields exactly 12.345, which must
	// round up to 12.35, not to even (12.34).
	res := engine.Calculate(domain.Assessment{
		AssessedValue:        decimal.NewFromInt(12345),
		RatePerMille:         decimal.NewFromInt(1),
		MunicipalRatePercent: decimal.NewFromInt(100),
		RemainingYears:       1,
	})
	assertDecEqual(t, "12.35", res.TaxCurrent, "TaxCurrent")
}

func TestCalculateThresholdNeverExceedsAssessedValue(t *testing.T) {
	engine := NewEngine()

	values := []string{"0", "1", "1.39", "1.40", "100", "999.99", "736857.14", "1031600", "98765432109876.54"}
	for _, v := range values {
		res := engine.Calculate(domain.Assessment{
			AssessedValue:        decimal.RequireFromString(v),
			RatePerMille:         decimal.RequireFromString("0.31"),
			MunicipalRatePercent: decimal.NewFromInt(470),
			RemainingYears:       4,
		})
		if res.ThresholdValue.GreaterThan(decimal.RequireFromString(v)) {
			t.Errorf("threshold %s exceeds assessed value %s", res.ThresholdValue.String(), v)
		}
		expected := RoundCents(decimal.RequireFromString(v).DivRound(decimal.RequireFromString("1.4"), DivisionPrecision))
		if !res.ThresholdValue.Equal(expected) {
			t.Errorf("threshold for %s = %s, want %s", v, res.ThresholdValue.String(), expected.String())
		}
	}
}

func TestCalculateZeroAssessedValue(t *testing.T) {
	engine := NewEngine()

	res := engine.Calculate(domain.Assessment{
		AssessedValue:        decimal.Zero,
		RatePerMille:         decimal.RequireFromString("0.31"),
		MunicipalRatePercent: decimal.NewFromInt(470),
		RemainingYears:       4,
	})

	for field, d := range map[string]decimal.Decimal{
		"TaxCurrent":                res.TaxCurrent,
		"ThresholdValue":            res.ThresholdValue,
		"TaxAtThreshold":            res.TaxAtThreshold,
		"SavingsPerYearAtThreshold": res.SavingsPerYearAtThreshold,
		"SavingsTotalAtThreshold":   res.SavingsTotalAtThreshold,
	} {
		if !d.IsZero() {
			t.Errorf("%s = %s, want 0", field, d.String())
		}
	}
}

// A custom value of zero is a real scenario, not an absent one: the tax at
// the custom value is zero and the entire current tax becomes the saving.
func TestCalculateCustomValueZero(t *testing.T) {
	engine := NewEngine()

	a := referenceAssessment(t)
	a.CustomValue = decPtr(decimal.Zero)
	res := engine.Calculate(a)

	require.True(t, res.HasCustomScenario())
	assert.True(t, res.TaxAtCustom.IsZero())
	assert.True(t, res.SavingsPerYearCustom.Equal(res.TaxCurrent))
	assert.True(t, res.SavingsTotalCustom.Equal(res.TaxCurrent.Mul(decimal.NewFromInt(4))))
}

func TestCalculateZeroRemainingYears(t *testing.T) {
	engine := NewEngine()

	a := referenceAssessment(t)
	a.RemainingYears = 0
	res := engine.Calculate(a)

	assertDecEqual(t, "429.44", res.SavingsPerYearAtThreshold, "SavingsPerYearAtThreshold")
	assert.True(t, res.SavingsTotalAtThreshold.IsZero())
}
