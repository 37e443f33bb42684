package output

import (
	"fmt"
	"strings"

	"github.com/bossin/grundsteuercheck/internal/domain"
)

// ConsoleFormatter renders the two-block report the CLI prints by default:
// the inputs as entered, then the threshold figures, then the optional
// custom scenario.
type ConsoleFormatter struct{}

func (cf *ConsoleFormatter) Name() string { return "console" }

func (cf *ConsoleFormatter) Format(a domain.Assessment, r domain.SavingsResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("Grundsteuer – Einsparungsrechner (§ 220 Abs. 2 BewG)\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	sb.WriteString("Eingaben:\n")
	sb.WriteString(fmt.Sprintf("  Grundsteuerwert:       %s\n", FormatEuro(a.AssessedValue)))
	sb.WriteString(fmt.Sprintf("  Messzahl:              %s\n", FormatPerMille(a.RatePerMille)))
	sb.WriteString(fmt.Sprintf("  Hebesatz:              %s\n", FormatPercent(a.MunicipalRatePercent)))
	sb.WriteString(fmt.Sprintf("  Restjahre:             %d\n", a.RemainingYears))
	if a.HasCustomScenario() {
		sb.WriteString(fmt.Sprintf("  Verkehrswert (eigen):  %s\n", FormatEuro(*a.CustomValue)))
	}
	sb.WriteString("\n")

	sb.WriteString("Ergebnisse:\n")
	sb.WriteString(fmt.Sprintf("  Jahressteuer (Status quo):        %s\n", FormatEuro(r.TaxCurrent)))
	sb.WriteString(fmt.Sprintf("  40%%-Schwelle (Wert / 1,4):        %s\n", FormatEuro(r.ThresholdValue)))
	sb.WriteString(fmt.Sprintf("  Jahressteuer an der Schwelle:     %s\n", FormatEuro(r.TaxAtThreshold)))
	sb.WriteString(fmt.Sprintf("  Ersparnis pro Jahr:               %s\n", FormatEuro(r.SavingsPerYearAtThreshold)))
	sb.WriteString(fmt.Sprintf("  Ersparnis über %d Jahr(e):         %s\n", a.RemainingYears, FormatEuro(r.SavingsTotalAtThreshold)))

	if r.HasCustomScenario() {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Szenario – Verkehrswert %s:\n", FormatEuro(*a.CustomValue)))
		sb.WriteString(fmt.Sprintf("  Jahressteuer:                     %s\n", FormatEuro(*r.TaxAtCustom)))
		sb.WriteString(fmt.Sprintf("  Ersparnis pro Jahr:               %s\n", FormatEuro(*r.SavingsPerYearCustom)))
		sb.WriteString(fmt.Sprintf("  Ersparnis über %d Jahr(e):         %s\n", a.RemainingYears, FormatEuro(*r.SavingsTotalCustom)))
	}

	return []byte(sb.String()), nil
}
