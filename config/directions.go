package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// APIKeyEnv holds the Directions API key.
const APIKeyEnv = "GOOGLE_MAPS_API_KEY"

// DirectionsConfig defines the Google Directions API client settings.
type DirectionsConfig struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
	// APIKeyFile is a file whose first line is the key. It is only read when
	// neither api_key nor GOOGLE_MAPS_API_KEY are set.
	APIKeyFile     string               `json:"api_key_file"`
	TimeoutSeconds int                  `json:"timeout_seconds"`
	PerModeRouting bool                 `json:"per_mode_routing"`
	Mock           DirectionsMockConfig `json:"mock"`
}

// DirectionsMockConfig configures the local Directions API mock.
type DirectionsMockConfig struct {
	Address         string `json:"address"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	// APIKey, when set, is the only key accepted by the mock.
	APIKey string `json:"api_key"`
}

// SetDefaults fills unset values. Negative values are left for Validate.
func (c *DirectionsConfig) SetDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.Mock.Address == "" {
		c.Mock.Address = ":8085"
	}
	if c.Mock.DistanceMeters == 0 {
		c.Mock.DistanceMeters = 8400
	}
	if c.Mock.DurationSeconds == 0 {
		c.Mock.DurationSeconds = 1980
	}
}

// Validate checks mandatory fields.
func (c DirectionsConfig) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.Mock.DistanceMeters < 0 || c.Mock.DurationSeconds < 0 {
		return fmt.Errorf("mock distance_meters and duration_seconds must not be negative")
	}
	return nil
}

// Timeout returns the HTTP timeout.
func (c DirectionsConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveAPIKey returns the key from the config, the environment or the key
// file, in that order. An empty key is not an error here.
func (c DirectionsConfig) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	if k := strings.TrimSpace(os.Getenv(APIKeyEnv)); k != "" {
		return k, nil
	}
	if c.APIKeyFile == "" {
		return "", nil
	}
	return readFirstLine(c.APIKeyFile)
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open api key file: %w", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text()), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return "", nil
}
