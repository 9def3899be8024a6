package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kilianp07/commuteco2/config"
	"github.com/kilianp07/commuteco2/infra/logger"
)

// MockPath is the path served by ServerMock, matching the real endpoint.
const MockPath = "/maps/api/directions/json"

// ServerMock serves a fixed Directions API response locally so the commute
// report can be produced without an API key or network access.
type ServerMock struct {
	mu       sync.Mutex
	addr     string
	cfg      config.DirectionsMockConfig
	log      logger.Logger
	srv      *http.Server
	requests *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// NewServerMock creates a new mock server using the default Prometheus
// registerer.
func NewServerMock(cfg config.DirectionsMockConfig) *ServerMock {
	return NewServerMockWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewServerMockWithRegistry creates a new mock server and registers metrics on
// the provided registerer. If reg is nil the default registerer is used.
// /metrics is served from reg when it is also a Gatherer.
func NewServerMockWithRegistry(cfg config.DirectionsMockConfig, reg prometheus.Registerer) *ServerMock {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	log := logger.New("directions-mock")

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "directions_mock_requests_total",
		Help: "Requests served by the Directions API mock",
	}, []string{"status"})
	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if exist, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				requests = exist
			} else {
				log.Errorf("existing collector for directions_mock_requests_total has wrong type %T", are.ExistingCollector)
			}
		}
	}

	return &ServerMock{
		addr:     cfg.Address,
		cfg:      cfg,
		log:      log,
		requests: requests,
		gatherer: gatherer,
	}
}

func (s *ServerMock) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			s.log.Errorf("write pong: %v", err)
		}
	})
	mux.HandleFunc(MockPath, s.handleDirections)
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

func (s *ServerMock) handleDirections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	var resp Response
	switch {
	case q.Get("key") == "" || (s.cfg.APIKey != "" && q.Get("key") != s.cfg.APIKey):
		resp = Response{Status: "REQUEST_DENIED", ErrorMessage: "The provided API key is invalid."}
	case q.Get("origin") == "" || q.Get("destination") == "":
		resp = Response{Status: "INVALID_REQUEST", ErrorMessage: "Invalid request. Missing the 'origin' or 'destination' parameter."}
	default:
		resp = s.fixture(q.Get("origin"), q.Get("destination"))
	}
	s.requests.WithLabelValues(resp.Status).Inc()
	s.log.Debugw("directions request", map[string]any{"mode": q.Get("mode"), "status": resp.Status})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Errorf("write response: %v", err)
	}
}

func (s *ServerMock) fixture(origin, destination string) Response {
	d, t := s.cfg.DistanceMeters, s.cfg.DurationSeconds
	return Response{
		Status: "OK",
		Routes: []Route{{
			Summary: "mock",
			Legs: []Leg{{
				Distance:     &Value{Text: fmt.Sprintf("%.1f km", float64(d)/1000), Value: &d},
				Duration:     &Value{Text: fmt.Sprintf("%d mins", t/60), Value: &t},
				StartAddress: origin,
				EndAddress:   destination,
			}},
		}},
	}
}

// Addr returns the listening address once Start has been called.
func (s *ServerMock) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// URL returns the Directions endpoint served by the mock.
func (s *ServerMock) URL() string { return "http://" + s.Addr() + MockPath }

// Start runs the HTTP server until the context is canceled.
func (s *ServerMock) Start(ctx context.Context) error {
	mux := s.routes()
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.srv = srv
	s.mu.Unlock()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("shutdown server: %v", err)
		}
		cancel()
	}()
	s.log.Infof("directions mock server listening on %s", ln.Addr())
	err = srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
