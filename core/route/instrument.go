package route

import (
	"context"
	"time"

	"github.com/kilianp07/commuteco2/core/metrics"
	"github.com/kilianp07/commuteco2/core/model"
)

// Instrument reports every measurement of p to rec.
func Instrument(p Provider, rec metrics.RouteRecorder) Provider {
	if rec == nil {
		return p
	}
	return ProviderFunc(func(ctx context.Context, origin, destination string, mode model.Mode) (model.Measurement, error) {
		start := time.Now()
		m, err := p.MeasureRoute(ctx, origin, destination, mode)
		rec.RecordRouteRequest(metrics.RouteRequest{Mode: mode, Elapsed: time.Since(start), Err: err})
		return m, err
	})
}
