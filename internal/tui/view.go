package tui

import (
	"fmt"
	"strings"

	"github.com/bossin/grundsteuercheck/internal/output"
)

// View renders the form, the results panel and the key help.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Grundsteuer – Einsparungsrechner (§ 220 Abs. 2 BewG)"))
	sb.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := FieldLabelStyle.Render(fieldLabels[i])
		if i == m.focused {
			label = FocusedLabelStyle.Render(fieldLabels[i])
		}
		sb.WriteString(fmt.Sprintf("%s\n%s\n", label, m.inputs[i].View()))
	}

	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(ErrorStyle.Render("Fehler: " + m.err.Error()))
		sb.WriteString("\n")
	case m.result != nil:
		sb.WriteString(m.resultsView())
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("enter: berechnen • tab/↓ ↑: Feld wechseln • esc: beenden"))

	return AppStyle.Render(sb.String())
}

func (m Model) resultsView() string {
	a, r := m.assessment, m.result

	rows := []string{
		metricRow("Jahressteuer (Status quo)", output.FormatEuro(r.TaxCurrent)),
		metricRow("40%-Schwelle (Wert / 1,4)", output.FormatEuro(r.ThresholdValue)),
		metricRow("Jahressteuer an der Schwelle", output.FormatEuro(r.TaxAtThreshold)),
		metricRow("Ersparnis pro Jahr", output.FormatEuro(r.SavingsPerYearAtThreshold)),
		metricRow(fmt.Sprintf("Ersparnis über %d Jahr(e)", a.RemainingYears), output.FormatEuro(r.SavingsTotalAtThreshold)),
	}

	if r.HasCustomScenario() {
		rows = append(rows,
			"",
			SubtitleStyle.Render(fmt.Sprintf("Szenario – Verkehrswert %s", output.FormatEuro(*a.CustomValue))),
			metricRow("Jahressteuer", output.FormatEuro(*r.TaxAtCustom)),
			metricRow("Ersparnis pro Jahr", output.FormatEuro(*r.SavingsPerYearCustom)),
			metricRow(fmt.Sprintf("Ersparnis über %d Jahr(e)", a.RemainingYears), output.FormatEuro(*r.SavingsTotalCustom)),
		)
	}

	return ResultsPanelStyle.Render(strings.Join(rows, "\n"))
}

func metricRow(label, value string) string {
	const labelWidth = 32
	padded := label
	if len([]rune(label)) < labelWidth {
		padded = label + strings.Repeat(" ", labelWidth-len([]rune(label)))
	}
	return MetricLabelStyle.Render(padded) + MetricValueStyle.Render(value)
}
