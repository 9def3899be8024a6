package config

import (
	"fmt"

	"github.com/kilianp07/commuteco2/core/factory"
)

const (
	ProviderDirections = "directions"
	ProviderConstant   = "constant"
)

// RouteConfig selects the route provider.
type RouteConfig struct {
	// Provider is "directions" (Google Directions API) or "constant".
	Provider string `json:"provider"`
	// Options holds provider specific settings, e.g. distance_meters for the
	// constant provider.
	Options map[string]any `json:"options"`
}

// SetDefaults applies sane defaults.
func (c *RouteConfig) SetDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderDirections
	}
}

// Validate checks mandatory fields.
func (c RouteConfig) Validate() error {
	if c.Provider != ProviderDirections && c.Provider != ProviderConstant {
		return fmt.Errorf("unknown route provider %s", c.Provider)
	}
	return nil
}

// Module returns the factory configuration of the provider.
func (c RouteConfig) Module() factory.ModuleConfig {
	return factory.ModuleConfig{Type: c.Provider, Conf: c.Options}
}
