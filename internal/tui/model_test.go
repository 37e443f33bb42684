package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossin/grundsteuercheck/internal/config"
)

func TestNewModelPrefillsDefaults(t *testing.T) {
	m := NewModel(config.BuiltinDefaults())

	assert.Equal(t, "0.31", m.inputs[fieldRatePerMille].Value())
	assert.Equal(t, "470", m.inputs[fieldMunicipalRate].Value())
	assert.Equal(t, "4", m.inputs[fieldRemainingYears].Value())
	assert.Equal(t, fieldAssessedValue, m.focused)
}

func TestCalculateFromForm(t *testing.T) {
	m := NewModel(config.BuiltinDefaults())
	m.inputs[fieldAssessedValue].SetValue("1031600")

	m.calculate()

	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	assert.Equal(t, "1503.04", m.result.TaxCurrent.StringFixed(2))
	assert.False(t, m.result.HasCustomScenario())
}

func TestCalculateFromFormWithCustomValue(t *testing.T) {
	m := NewModel(config.BuiltinDefaults())
	m.inputs[fieldAssessedValue].SetValue("1031600")
	m.inputs[fieldCustomValue].SetValue("600000")

	m.calculate()

	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	require.True(t, m.result.HasCustomScenario())
	assert.Equal(t, "874.20", m.result.TaxAtCustom.StringFixed(2))
}

func TestCalculateFromFormReportsParseErrors(t *testing.T) {
	m := NewModel(config.BuiltinDefaults())
	m.inputs[fieldAssessedValue].SetValue("not-a-number")

	m.calculate()

	require.Error(t, m.err)
	assert.Nil(t, m.result)

	m.inputs[fieldAssessedValue].SetValue("1031600")
	m.inputs[fieldRemainingYears].SetValue("-3")
	m.calculate()
	require.Error(t, m.err)
}
