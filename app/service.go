package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/commuteco2/config"
	"github.com/kilianp07/commuteco2/core/commute"
	coremetrics "github.com/kilianp07/commuteco2/core/metrics"
	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/core/route"
	"github.com/kilianp07/commuteco2/infra/logger"
	"github.com/kilianp07/commuteco2/infra/metrics"
	"github.com/kilianp07/commuteco2/pkg/report"
)

// Service wires the route provider, the planner, metrics and reporting for
// one run.
type Service struct {
	RunID    string
	provider route.Provider
	planner  *commute.Planner
	sink     coremetrics.ResultsSink
	registry *prometheus.Registry
	textfile string
	format   string
	log      logger.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Service) { s.RunID = id }
}

// WithLogger replaces the service logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	svc := &Service{
		RunID:    uuid.NewString(),
		textfile: cfg.Metrics.Textfile,
		format:   cfg.ReportFormat(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logger.New("service").With("run_id", svc.RunID)
	}

	var recorder coremetrics.RouteRecorder = coremetrics.NopSink{}
	svc.sink = coremetrics.NopSink{}
	if cfg.Metrics.Enabled() {
		svc.registry = prometheus.NewRegistry()
		sink, err := metrics.NewPromSinkWithRegistry(svc.registry)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		recorder, svc.sink = sink, sink
	}

	providers := NewProviderRegistry(cfg.Directions, svc.log)
	provider, err := providers.Create(cfg.Route.Module())
	if err != nil {
		return nil, fmt.Errorf("route provider %s (available: %s): %w",
			cfg.Route.Provider, strings.Join(providers.Types(), ", "), err)
	}
	svc.provider = route.Instrument(provider, recorder)

	planner, err := commute.NewPlanner(svc.provider, svc.log)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	svc.planner = planner
	return svc, nil
}

// Run compares every commute mode and writes the report to w. Metrics are
// exported even when the comparison fails.
func (s *Service) Run(ctx context.Context, w io.Writer) (err error) {
	defer func() {
		if werr := s.exportMetrics(); werr != nil && err == nil {
			err = werr
		}
	}()

	results, err := s.planner.Plan(ctx, commute.Home, commute.Work)
	if err != nil {
		return err
	}
	if err := s.sink.RecordResults(results); err != nil {
		return fmt.Errorf("record results: %w", err)
	}
	return report.Write(w, s.format, report.Report{
		RunID:       s.RunID,
		Origin:      commute.Home,
		Destination: commute.Work,
		Results:     results,
	})
}

// Measure measures the commute for a single mode.
func (s *Service) Measure(ctx context.Context, mode model.Mode) (model.Measurement, error) {
	m, err := s.provider.MeasureRoute(ctx, commute.Home, commute.Work, mode)
	if err != nil {
		return model.Measurement{}, fmt.Errorf("measure %s route: %w", mode, err)
	}
	return m, nil
}

func (s *Service) exportMetrics() error {
	if s.registry == nil || s.textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(s.textfile, s.registry); err != nil {
		return err
	}
	s.log.Debugf("metrics written to %s", s.textfile)
	return nil
}
