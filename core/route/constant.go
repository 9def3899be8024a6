package route

import (
	"context"
	"fmt"

	"github.com/kilianp07/commuteco2/core/model"
)

// DefaultConstantDistance is the distance reported by Constant when unset.
const DefaultConstantDistance = 20000.0

// ConstantConfig configures the Constant provider.
type ConstantConfig struct {
	// DistanceMeters defaults to DefaultConstantDistance when unset.
	DistanceMeters *float64 `json:"distance_meters"`
}

// SetDefaults applies sane defaults.
func (c *ConstantConfig) SetDefaults() {
	if c.DistanceMeters == nil {
		d := DefaultConstantDistance
		c.DistanceMeters = &d
	}
}

// Validate rejects negative distances.
func (c ConstantConfig) Validate() error {
	if c.DistanceMeters != nil && *c.DistanceMeters < 0 {
		return fmt.Errorf("distance_meters must not be negative, got %v", *c.DistanceMeters)
	}
	return nil
}

// Constant reports the same distance for every trip without any network
// access. It has no travel time.
type Constant struct {
	distance float64
}

// NewConstant creates a Constant provider from cfg.
func NewConstant(cfg ConstantConfig) *Constant {
	cfg.SetDefaults()
	return &Constant{distance: *cfg.DistanceMeters}
}

// MeasureRoute implements Provider. It never fails.
func (c *Constant) MeasureRoute(_ context.Context, _, _ string, mode model.Mode) (model.Measurement, error) {
	return model.Measurement{DistanceMeters: AdjustDistance(c.distance, mode)}, nil
}
