// Package calculation implements the Grundsteuer savings arithmetic:
// annual tax from assessed value, Messzahl and Hebesatz, the 40 % threshold
// value (assessed value / 1.4), and the yearly and total savings at the
// threshold and at an optional custom valuation.
//
// Every stage is rounded to cents before it feeds the next one. The per-year
// savings are the difference of the two already-rounded tax figures, not a
// rounded difference of unrounded intermediates, so the cent amounts shown
// for the individual taxes and the savings always add up.
package calculation

import (
	"github.com/bossin/grundsteuercheck/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	perMilleDivisor  = decimal.NewFromInt(1000)
	percentDivisor   = decimal.NewFromInt(100)
	thresholdDivisor = decimal.RequireFromString("1.4")
)

// Engine computes savings results. It is stateless and safe for concurrent
// use; each Calculate call works only on its own operands.
type Engine struct{}

// NewEngine creates a new calculation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate derives the savings figures for one assessment.
//
// The core does not validate ranges: a zero assessed value yields all-zero
// results and non-positive remaining years simply scale the totals. Boundary
// validation lives in the parse functions and the config loader.
func (e *Engine) Calculate(a domain.Assessment) domain.SavingsResult {
	mess := a.RatePerMille.DivRound(perMilleDivisor, DivisionPrecision)
	heb := a.MunicipalRatePercent.DivRound(percentDivisor, DivisionPrecision)
	years := decimal.NewFromInt(int64(a.RemainingYears))

	taxCurrent := e.annualTax(a.AssessedValue, mess, heb)

	threshold := RoundCents(a.AssessedValue.DivRound(thresholdDivisor, DivisionPrecision))
	taxAtThreshold := e.annualTax(threshold, mess, heb)
	savingsPerYear := RoundCents(taxCurrent.Sub(taxAtThreshold))
	savingsTotal := RoundCents(savingsPerYear.Mul(years))

	res := domain.SavingsResult{
		TaxCurrent:                taxCurrent,
		ThresholdValue:            threshold,
		TaxAtThreshold:            taxAtThreshold,
		SavingsPerYearAtThreshold: savingsPerYear,
		SavingsTotalAtThreshold:   savingsTotal,
	}

	if a.CustomValue != nil {
		taxAtCustom := e.annualTax(*a.CustomValue, mess, heb)
		savingsPerYearCustom := RoundCents(taxCurrent.Sub(taxAtCustom))
		savingsTotalCustom := RoundCents(savingsPerYearCustom.Mul(years))

		res.TaxAtCustom = &taxAtCustom
		res.SavingsPerYearCustom = &savingsPerYearCustom
		res.SavingsTotalCustom = &savingsTotalCustom
	}

	return res
}

// annualTax computes value × Messzahl factor × Hebesatz factor, rounded to
// cents.
func (e *Engine) annualTax(value, messFactor, hebFactor decimal.Decimal) decimal.Decimal {
	return RoundCents(value.Mul(messFactor).Mul(hebFactor))
}
