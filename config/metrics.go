package config

// MetricsConfig defines where run metrics are exported.
type MetricsConfig struct {
	// Textfile is written in the Prometheus text format at the end of a run,
	// for the node exporter textfile collector. Empty disables the export.
	Textfile string `json:"textfile"`
}

// Enabled reports whether metrics are exported.
func (c MetricsConfig) Enabled() bool { return c.Textfile != "" }
