package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bossin/grundsteuercheck/internal/calculation"
	"github.com/bossin/grundsteuercheck/internal/domain"
)

// Update handles messages: focus movement, quitting, and recomputing on
// enter.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focused + 1) % fieldCount)
			return m, textinput.Blink

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, textinput.Blink

		case tea.KeyEnter:
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

// calculate parses the form and runs the engine, recording either a result
// or the first parse error.
func (m *Model) calculate() {
	m.result = nil
	m.assessment = nil
	m.err = nil

	assessed, err := calculation.ParseAmount("Grundsteuerwert", m.inputs[fieldAssessedValue].Value())
	if err != nil {
		m.err = err
		return
	}
	rate, err := calculation.ParseRate("Messzahl", m.inputs[fieldRatePerMille].Value())
	if err != nil {
		m.err = err
		return
	}
	municipal, err := calculation.ParseRate("Hebesatz", m.inputs[fieldMunicipalRate].Value())
	if err != nil {
		m.err = err
		return
	}
	years, err := strconv.Atoi(m.inputs[fieldRemainingYears].Value())
	if err != nil || years < 0 {
		m.err = fmt.Errorf("Restjahre muss eine nicht-negative ganze Zahl sein, nicht %q",
			m.inputs[fieldRemainingYears].Value())
		return
	}
	custom, err := calculation.ParseOptionalAmount("Verkehrswert", m.inputs[fieldCustomValue].Value())
	if err != nil {
		m.err = err
		return
	}

	a := domain.Assessment{
		AssessedValue:        assessed,
		RatePerMille:         rate,
		MunicipalRatePercent: municipal,
		RemainingYears:       years,
		CustomValue:          custom,
	}
	res := m.engine.Calculate(a)

	m.assessment = &a
	m.result = &res
}
