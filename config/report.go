package config

import (
	"fmt"

	"github.com/kilianp07/commuteco2/pkg/report"
)

// Report formats.
const (
	FormatSummary = report.FormatSummary
	FormatRaw     = report.FormatRaw
	FormatJSON    = report.FormatJSON
	FormatCSV     = report.FormatCSV
)

// ReportConfig defines how results are printed.
type ReportConfig struct {
	// Format is summary, raw, json or csv. When empty it follows the route
	// provider, see Config.ReportFormat.
	Format string `json:"format"`
}

// Validate checks mandatory fields.
func (c ReportConfig) Validate() error {
	switch c.Format {
	case "", FormatSummary, FormatRaw, FormatJSON, FormatCSV:
		return nil
	default:
		return fmt.Errorf("unknown report format %s", c.Format)
	}
}

// ReportFormat returns the configured format, or raw for the constant
// provider, which has no travel time, and summary otherwise.
func (c Config) ReportFormat() string {
	if c.Report.Format != "" {
		return c.Report.Format
	}
	if c.Route.Provider == ProviderConstant {
		return FormatRaw
	}
	return FormatSummary
}
