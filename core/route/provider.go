// Package route defines how commute distances and durations are obtained.
package route

import (
	"context"

	"github.com/kilianp07/commuteco2/core/model"
)

// CarPoolDetour is the distance factor applied to car pool trips.
// Picking up a passenger is approximated as a flat 10% detour.
const CarPoolDetour = 1.1

// Provider measures the route between two addresses for a commute mode.
type Provider interface {
	MeasureRoute(ctx context.Context, origin, destination string, mode model.Mode) (model.Measurement, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, origin, destination string, mode model.Mode) (model.Measurement, error)

// MeasureRoute calls f.
func (f ProviderFunc) MeasureRoute(ctx context.Context, origin, destination string, mode model.Mode) (model.Measurement, error) {
	return f(ctx, origin, destination, mode)
}

// AdjustDistance applies the mode specific distance correction.
func AdjustDistance(distanceMeters float64, mode model.Mode) float64 {
	if mode == model.ModeCarPool {
		return distanceMeters * CarPoolDetour
	}
	return distanceMeters
}
