// Package config loads the optional defaults file for the calculator.
// Messzahl, Hebesatz and the remaining years rarely change between runs, so
// they can live in a small YAML file next to the binary instead of being
// typed on every invocation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Built-in defaults: Messzahl 0,31 ‰ (residential property), Hebesatz 470 %,
// four years until the next Hauptfeststellung.
var (
	DefaultRatePerMille         = decimal.RequireFromString("0.31")
	DefaultMunicipalRatePercent = decimal.NewFromInt(470)
)

const DefaultRemainingYears = 4

// Defaults holds the fallback values applied when a CLI flag or form field
// is left empty. Decimals are parsed from the YAML scalars as text, so the
// file carries exact values just like the flags do.
type Defaults struct {
	RatePerMille         decimal.Decimal `yaml:"messzahl"`
	MunicipalRatePercent decimal.Decimal `yaml:"hebesatz"`
	RemainingYears       int             `yaml:"restjahre"`
}

// BuiltinDefaults returns the compiled-in defaults.
func BuiltinDefaults() Defaults {
	return Defaults{
		RatePerMille:         DefaultRatePerMille,
		MunicipalRatePercent: DefaultMunicipalRatePercent,
		RemainingYears:       DefaultRemainingYears,
	}
}

// LoadDefaults reads the defaults file at path. A missing file (or an empty
// path) is not an error: the built-in defaults are returned. Values omitted
// from the file keep their built-in counterpart.
func LoadDefaults(path string) (Defaults, error) {
	defaults := BuiltinDefaults()

	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return Defaults{}, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}
	if defaults.RemainingYears == 0 {
		defaults.RemainingYears = DefaultRemainingYears
	}

	if err := defaults.Validate(); err != nil {
		return Defaults{}, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return defaults, nil
}

// Validate rejects defaults that would make every calculation nonsensical.
func (d Defaults) Validate() error {
	if d.RatePerMille.IsNegative() {
		return fmt.Errorf("messzahl must not be negative, got %s", d.RatePerMille.String())
	}
	if d.MunicipalRatePercent.IsNegative() {
		return fmt.Errorf("hebesatz must not be negative, got %s", d.MunicipalRatePercent.String())
	}
	if d.RemainingYears <= 0 {
		return fmt.Errorf("restjahre must be positive, got %d", d.RemainingYears)
	}
	return nil
}
