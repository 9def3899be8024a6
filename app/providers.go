package app

import (
	"fmt"

	"github.com/kilianp07/commuteco2/config"
	"github.com/kilianp07/commuteco2/core/factory"
	"github.com/kilianp07/commuteco2/core/route"
	"github.com/kilianp07/commuteco2/infra/directions"
	"github.com/kilianp07/commuteco2/infra/logger"
)

// NewProviderRegistry returns the route providers selectable with
// route.provider.
func NewProviderRegistry(cfg config.DirectionsConfig, log logger.Logger) *factory.Registry[route.Provider] {
	reg := factory.NewRegistry[route.Provider]()
	mustRegister(reg, config.ProviderDirections, func(map[string]any) (route.Provider, error) {
		key, err := cfg.ResolveAPIKey()
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, fmt.Errorf("%w: set %s or directions.api_key", directions.ErrMissingAPIKey, config.APIKeyEnv)
		}
		return directions.NewClient(key,
			directions.WithBaseURL(cfg.BaseURL),
			directions.WithTimeout(cfg.Timeout()),
			directions.WithPerModeRouting(cfg.PerModeRouting),
			directions.WithLogger(log),
		)
	})
	mustRegister(reg, config.ProviderConstant, func(conf map[string]any) (route.Provider, error) {
		var c route.ConstantConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, fmt.Errorf("constant provider options: %w", err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("constant provider options: %w", err)
		}
		return route.NewConstant(c), nil
	})
	return reg
}

func mustRegister(reg *factory.Registry[route.Provider], name string, f factory.Factory[route.Provider]) {
	if err := reg.Register(name, f); err != nil {
		panic(err)
	}
}
