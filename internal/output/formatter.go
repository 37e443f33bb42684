// Package output renders savings results for the CLI and the web API:
// a console table, a JSON document and a CSV export, plus the German
// euro formatting helpers shared by all front ends.
package output

import (
	"fmt"

	"github.com/bossin/grundsteuercheck/internal/domain"
)

// Formatter renders one assessment and its result into a byte slice.
type Formatter interface {
	Name() string
	Format(a domain.Assessment, r domain.SavingsResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or nil if
// there is none.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the registered formatter names for flag help text.
func FormatterNames() []string {
	return []string{"console", "json", "csv"}
}

// Render formats with the named formatter and fails on unknown names.
func Render(name string, a domain.Assessment, r domain.SavingsResult) ([]byte, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
	return f.Format(a, r)
}
