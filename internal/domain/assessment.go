// Package domain defines the value records for the Grundsteuer savings
// calculation under § 220 Abs. 2 BewG: the assessed property inputs and the
// derived tax/savings figures. All monetary fields are shopspring decimals;
// binary floats never appear in this package.
package domain

import "github.com/shopspring/decimal"

// Assessment carries the inputs for one savings calculation. It is built once
// per request and never mutated afterwards.
type Assessment struct {
	// AssessedValue is the Grundsteuerwert in euros, >= 0.
	AssessedValue decimal.Decimal

	// RatePerMille is the Steuermesszahl in per mille, e.g. 0.31 meaning
	// a factor of 0.00031.
	RatePerMille decimal.Decimal

	// MunicipalRatePercent is the Hebesatz in percent, e.g. 470 meaning
	// a factor of 4.70.
	MunicipalRatePercent decimal.Decimal

	// RemainingYears is the number of years until the next Hauptfeststellung.
	RemainingYears int

	// CustomValue is an optional appraised market value (Verkehrswert) for
	// the what-if scenario. nil means no custom scenario was requested;
	// a zero value is a legitimate, distinct input.
	CustomValue *decimal.Decimal
}

// HasCustomScenario reports whether a custom valuation was supplied.
func (a Assessment) HasCustomScenario() bool {
	return a.CustomValue != nil
}

// SavingsResult holds the derived figures for one Assessment. Every monetary
// field is already rounded to cents; nothing here is ever re-rounded on
// display or export.
type SavingsResult struct {
	// TaxCurrent is the annual tax at the assessed value.
	TaxCurrent decimal.Decimal

	// ThresholdValue is the assessed value divided by 1.4 — the valuation
	// below which a market-value challenge pays off.
	ThresholdValue decimal.Decimal

	// TaxAtThreshold is the annual tax if the threshold value were the base.
	TaxAtThreshold decimal.Decimal

	SavingsPerYearAtThreshold decimal.Decimal
	SavingsTotalAtThreshold   decimal.Decimal

	// Custom-scenario figures. Either all three are set or all are nil,
	// matching Assessment.CustomValue.
	TaxAtCustom          *decimal.Decimal
	SavingsPerYearCustom *decimal.Decimal
	SavingsTotalCustom   *decimal.Decimal
}

// HasCustomScenario reports whether the custom-scenario figures are populated.
func (r SavingsResult) HasCustomScenario() bool {
	return r.TaxAtCustom != nil
}
