package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/bossin/grundsteuercheck/internal/domain"
)

// CSVFormatter renders one field,value row per figure, decimals in plain
// dot notation so spreadsheets parse them without locale guessing.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

func (cf *CSVFormatter) Format(a domain.Assessment, r domain.SavingsResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"field", "value"},
		{"assessed_value", a.AssessedValue.StringFixed(2)},
		{"rate_per_mille", a.RatePerMille.String()},
		{"municipal_rate_percent", a.MunicipalRatePercent.String()},
		{"remaining_years", strconv.Itoa(a.RemainingYears)},
		{"tax_current", r.TaxCurrent.StringFixed(2)},
		{"threshold_value", r.ThresholdValue.StringFixed(2)},
		{"tax_at_threshold", r.TaxAtThreshold.StringFixed(2)},
		{"savings_per_year_at_threshold", r.SavingsPerYearAtThreshold.StringFixed(2)},
		{"savings_total_at_threshold", r.SavingsTotalAtThreshold.StringFixed(2)},
	}
	if r.HasCustomScenario() {
		rows = append(rows,
			[]string{"custom_value", a.CustomValue.StringFixed(2)},
			[]string{"tax_at_custom", r.TaxAtCustom.StringFixed(2)},
			[]string{"savings_per_year_custom", r.SavingsPerYearCustom.StringFixed(2)},
			[]string{"savings_total_custom", r.SavingsTotalCustom.StringFixed(2)},
		)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
