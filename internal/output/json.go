package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bossin/grundsteuercheck/internal/domain"
)

// ResultDoc is the serialized form of a SavingsResult. The monetary fields
// are JSON numbers produced from the already-rounded decimals, so no binary
// float rounding can alter the digits. The custom fields are omitted
// entirely when no custom scenario was requested; a supplied zero still
// appears.
type ResultDoc struct {
	TaxCurrent                json.Number `json:"tax_current"`
	ThresholdValue            json.Number `json:"threshold_value"`
	TaxAtThreshold            json.Number `json:"tax_at_threshold"`
	SavingsPerYearAtThreshold json.Number `json:"savings_per_year_at_threshold"`
	SavingsTotalAtThreshold   json.Number `json:"savings_total_at_threshold"`

	TaxAtCustom          *json.Number `json:"tax_at_custom,omitempty"`
	SavingsPerYearCustom *json.Number `json:"savings_per_year_custom,omitempty"`
	SavingsTotalCustom   *json.Number `json:"savings_total_custom,omitempty"`
}

// NewResultDoc converts a SavingsResult into its export form.
func NewResultDoc(r domain.SavingsResult) ResultDoc {
	doc := ResultDoc{
		TaxCurrent:                jsonNumber(r.TaxCurrent),
		ThresholdValue:            jsonNumber(r.ThresholdValue),
		TaxAtThreshold:            jsonNumber(r.TaxAtThreshold),
		SavingsPerYearAtThreshold: jsonNumber(r.SavingsPerYearAtThreshold),
		SavingsTotalAtThreshold:   jsonNumber(r.SavingsTotalAtThreshold),
	}
	if r.HasCustomScenario() {
		doc.TaxAtCustom = jsonNumberPtr(*r.TaxAtCustom)
		doc.SavingsPerYearCustom = jsonNumberPtr(*r.SavingsPerYearCustom)
		doc.SavingsTotalCustom = jsonNumberPtr(*r.SavingsTotalCustom)
	}
	return doc
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func jsonNumberPtr(d decimal.Decimal) *json.Number {
	n := jsonNumber(d)
	return &n
}

// JSONFormatter renders the result as an indented JSON document.
type JSONFormatter struct{}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) Format(_ domain.Assessment, r domain.SavingsResult) ([]byte, error) {
	return json.MarshalIndent(NewResultDoc(r), "", "  ")
}
