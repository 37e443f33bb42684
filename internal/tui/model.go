// Package tui implements the interactive terminal front end: one form over
// the calculator inputs with a live results panel.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bossin/grundsteuercheck/internal/calculation"
	"github.com/bossin/grundsteuercheck/internal/config"
	"github.com/bossin/grundsteuercheck/internal/domain"
)

// Form fields, in focus order.
const (
	fieldAssessedValue = iota
	fieldRatePerMille
	fieldMunicipalRate
	fieldRemainingYears
	fieldCustomValue
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Grundsteuerwert (€)",
	"Steuermesszahl (‰)",
	"Hebesatz (%)",
	"Restjahre",
	"Verkehrswert lt. Gutachten (€, optional)",
}

// Model is the application state: the form inputs plus the last outcome.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused int

	engine *calculation.Engine

	assessment *domain.Assessment
	result     *domain.SavingsResult
	err        error

	width  int
	height int
}

// NewModel creates the form model, prefilled from the defaults.
func NewModel(defaults config.Defaults) Model {
	m := Model{
		engine: calculation.NewEngine(),
		width:  80,
		height: 24,
	}

	placeholders := [fieldCount]string{"z. B. 1031600", "z. B. 0.31", "z. B. 470", "z. B. 4", "z. B. 600000"}
	prefills := [fieldCount]string{
		"",
		defaults.RatePerMille.String(),
		defaults.MunicipalRatePercent.String(),
		strconv.Itoa(defaults.RemainingYears),
		"",
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 20
		ti.Width = 24
		ti.SetValue(prefills[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldAssessedValue].Focus()

	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
