// Package commute compares the CO2 footprint of the ways to get to work.
package commute

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilianp07/commuteco2/core/emission"
	"github.com/kilianp07/commuteco2/core/logger"
	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/core/route"
)

// The commute that is compared.
const (
	Home = "Flutstraße 23, 12439 Berlin"
	Work = "Am Friedrichshain 20D, 10407 Berlin"
)

// ErrZeroBaseline is returned when driving alone emits nothing, which leaves
// the savings undefined.
var ErrZeroBaseline = errors.New("car emission is zero, savings are undefined")

// Planner measures every commute mode and compares it to driving alone.
type Planner struct {
	provider route.Provider
	factors  []model.Factor
	log      logger.Logger
}

// NewPlanner creates a Planner over the static emission table.
func NewPlanner(p route.Provider, log logger.Logger) (*Planner, error) {
	if p == nil {
		return nil, fmt.Errorf("route provider is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Planner{provider: p, factors: model.Factors(), log: log}, nil
}

// Plan measures the route once per mode, in table order, and returns one
// result per mode. The first provider error aborts the plan.
func (p *Planner) Plan(ctx context.Context, origin, destination string) ([]model.Result, error) {
	results := make([]model.Result, 0, len(p.factors))
	baseline := -1
	for _, f := range p.factors {
		m, err := p.provider.MeasureRoute(ctx, origin, destination, f.Mode)
		if err != nil {
			return nil, fmt.Errorf("measure %s route: %w", f.Mode, err)
		}
		grams := emission.ForMode(m.DistanceMeters, f.Mode)
		p.log.Debugw("mode measured", map[string]any{
			"mode":           f.Mode.String(),
			"distance_m":     m.DistanceMeters,
			"duration_s":     m.Duration.Seconds(),
			"emission_grams": grams,
		})
		if f.Mode == model.ModeCar {
			baseline = len(results)
		}
		results = append(results, model.Result{
			Mode:           f.Mode,
			DistanceMeters: m.DistanceMeters,
			Duration:       m.Duration,
			EmissionGrams:  grams,
		})
	}

	if baseline < 0 {
		return nil, fmt.Errorf("no %s entry in the emission table", model.ModeCar)
	}
	car := results[baseline].EmissionGrams
	if car == 0 {
		return nil, ErrZeroBaseline
	}
	for i := range results {
		results[i].SavingsPct = emission.Savings(results[i].EmissionGrams, car)
	}
	p.log.Infof("compared %d commute modes from %q to %q", len(results), origin, destination)
	return results, nil
}
