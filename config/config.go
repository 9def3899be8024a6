package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g.
// COMMUTE_ROUTE__PROVIDER=constant sets route.provider.
const EnvPrefix = "COMMUTE_"

// DefaultEnvFile is loaded before the environment is read, when present.
const DefaultEnvFile = ".env"

type Config struct {
	Route      RouteConfig      `json:"route"`
	Directions DirectionsConfig `json:"directions"`
	Report     ReportConfig     `json:"report"`
	Metrics    MetricsConfig    `json:"metrics"`
	Logging    LoggingConfig    `json:"logging"`
}

// Load reads the configuration with Read and validates it.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg, err := Read(path, envFiles...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the configuration and applies defaults without validating it,
// so callers can apply overrides first. The file at path is optional: an
// empty path only uses defaults and the environment. Dotenv files are loaded
// into the process environment first; missing ones are skipped and variables
// already set are kept.
func Read(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := loadDotEnv(f); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return &cfg, nil
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Route.SetDefaults()
	c.Directions.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section. The API key is checked when the directions
// client is built since only that provider needs it.
func (c Config) Validate() error {
	if err := c.Route.Validate(); err != nil {
		return err
	}
	if err := c.Directions.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
