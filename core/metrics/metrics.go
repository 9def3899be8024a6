package metrics

import (
	"time"

	"github.com/kilianp07/commuteco2/core/model"
)

// RouteRequest describes one route measurement.
type RouteRequest struct {
	Mode    model.Mode
	Elapsed time.Duration
	Err     error
}

// RouteRecorder records route measurements.
type RouteRecorder interface {
	RecordRouteRequest(req RouteRequest)
}

// ResultsSink records the results of a run.
type ResultsSink interface {
	RecordResults(results []model.Result) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordRouteRequest(RouteRequest) {}

func (NopSink) RecordResults([]model.Result) error { return nil }
