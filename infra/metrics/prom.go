package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/commuteco2/core/metrics"
	"github.com/kilianp07/commuteco2/core/model"
)

// PromSink records route requests and commute results in Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	emission *prometheus.GaugeVec
	savings  *prometheus.GaugeVec
	distance *prometheus.GaugeVec
	lastRun  prometheus.Gauge
	now      func() time.Time
}

var (
	_ coremetrics.RouteRecorder = (*PromSink)(nil)
	_ coremetrics.ResultsSink   = (*PromSink)(nil)
)

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. If the
// collectors are already registered, the existing ones are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "commute_route_requests_total",
		Help: "Route measurements by commute mode and outcome",
	}, []string{"mode", "outcome"}))
	if err != nil {
		return nil, err
	}
	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "commute_route_request_duration_seconds",
		Help:    "Time spent measuring a route",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	emission, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "commute_emission_grams",
		Help: "CO2 emitted per person for the commute",
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	savings, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "commute_savings_percent",
		Help: "CO2 saved compared to driving alone",
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	distance, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "commute_distance_meters",
		Help: "Measured commute distance",
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	lastRun, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "commute_last_run_timestamp_seconds",
		Help: "Unix time of the last completed run",
	}))
	if err != nil {
		return nil, err
	}
	return &PromSink{
		requests: requests,
		latency:  latency,
		emission: emission,
		savings:  savings,
		distance: distance,
		lastRun:  lastRun,
		now:      time.Now,
	}, nil
}

// register adds c to reg, reusing an already registered collector of the
// same type.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if exist, ok := are.ExistingCollector.(T); ok {
				return exist, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// RecordRouteRequest counts a measurement and observes its latency.
func (s *PromSink) RecordRouteRequest(req coremetrics.RouteRequest) {
	outcome := "ok"
	if req.Err != nil {
		outcome = "error"
	}
	mode := req.Mode.String()
	s.requests.WithLabelValues(mode, outcome).Inc()
	s.latency.WithLabelValues(mode).Observe(req.Elapsed.Seconds())
}

// RecordResults sets the per mode gauges and the last run timestamp.
func (s *PromSink) RecordResults(results []model.Result) error {
	for _, r := range results {
		mode := r.Mode.String()
		s.emission.WithLabelValues(mode).Set(r.EmissionGrams)
		s.savings.WithLabelValues(mode).Set(r.SavingsPct)
		s.distance.WithLabelValues(mode).Set(r.DistanceMeters)
	}
	s.lastRun.Set(float64(s.now().Unix()))
	return nil
}
