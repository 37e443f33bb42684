package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer euros", "1031600", "1031600", false},
		{"cents", "736857.14", "736857.14", false},
		{"zero", "0", "0", false},
		{"surrounding whitespace", " 600000 ", "600000", false},
		{"negative", "-1", "", true},
		{"empty", "", "", true},
		{"letters", "abc", "", true},
		{"german decimal comma", "1031600,00", "", true},
		{"double dot", "1.031.600", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseAmount("assessed value", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseAmountErrorNamesField(t *testing.T) {
	_, err := ParseAmount("assessed value", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assessed value")
}

func TestParseRateRejectsNegative(t *testing.T) {
	_, err := ParseRate("municipal rate", "-470")
	require.Error(t, err)

	d, err := ParseRate("rate per mille", "0.31")
	require.NoError(t, err)
	assert.Equal(t, "0.31", d.String())
}

func TestParseOptionalAmount(t *testing.T) {
	d, err := ParseOptionalAmount("custom value", "")
	require.NoError(t, err)
	assert.Nil(t, d, "empty string means absent")

	d, err = ParseOptionalAmount("custom value", "0")
	require.NoError(t, err)
	require.NotNil(t, d, "explicit zero is present")
	assert.True(t, d.IsZero())

	_, err = ParseOptionalAmount("custom value", "x")
	require.Error(t, err)
}
