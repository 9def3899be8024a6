package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/commuteco2/config"
	"github.com/kilianp07/commuteco2/core/factory"
	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/infra/directions"
	"github.com/kilianp07/commuteco2/infra/logger"
)

const directionsFixture = `{"status":"OK","routes":[{"legs":[{"distance":{"value":12345},"duration":{"value":1999}}]}]}`

func loadConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	t.Setenv(config.APIKeyEnv, "")
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.Load("", filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	return cfg
}

func TestServiceRunConstant(t *testing.T) {
	cfg := loadConfig(t, map[string]string{"COMMUTE_ROUTE__PROVIDER": "constant"})
	svc, err := New(cfg, WithLogger(logger.NopLogger{}))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, svc.Run(context.Background(), &out))
	want := "BIKE produces 0.00 g of CO2. That is a 100.00% reduction compared to taking the car.\n" +
		"BUS produces 1730000.00 g of CO2. That is a 26.69% reduction compared to taking the car.\n" +
		"CAR produces 2360000.00 g of CO2. That is a 0.00% reduction compared to taking the car.\n" +
		"CAR_POOL produces 1298000.00 g of CO2. That is a 45.00% reduction compared to taking the car.\n"
	assert.Equal(t, want, out.String())
	assert.NotEmpty(t, svc.RunID)
}

func TestServiceRunDirections(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(directionsFixture))
	}))
	defer ts.Close()

	textfile := filepath.Join(t.TempDir(), "commute.prom")
	cfg := loadConfig(t, map[string]string{
		config.APIKeyEnv:               "test-key",
		"COMMUTE_DIRECTIONS__BASE_URL": ts.URL,
		"COMMUTE_METRICS__TEXTFILE":    textfile,
	})
	svc, err := New(cfg, WithLogger(logger.NopLogger{}), WithRunID("run-42"))
	require.NoError(t, err)
	assert.Equal(t, "run-42", svc.RunID)

	var out bytes.Buffer
	require.NoError(t, svc.Run(context.Background(), &out))
	want := "BIKE takes 33 min and produces 0 kg of CO2. That is a 100.00% reduction compared to taking the car.\n" +
		"BUS takes 33 min and produces 1067 kg of CO2. That is a 26.69% reduction compared to taking the car.\n" +
		"CAR takes 33 min and produces 1456 kg of CO2. That is a 0.00% reduction compared to taking the car.\n" +
		"CAR_POOL takes 33 min and produces 801 kg of CO2. That is a 45.00% reduction compared to taking the car.\n"
	assert.Equal(t, want, out.String())

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `commute_route_requests_total{mode="CAR",outcome="ok"} 1`)
	assert.Contains(t, string(data), `commute_savings_percent{mode="BIKE"} 100`)
}

func TestServiceRunDirectionsFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","routes":[]}`))
	}))
	defer ts.Close()

	textfile := filepath.Join(t.TempDir(), "commute.prom")
	cfg := loadConfig(t, map[string]string{
		config.APIKeyEnv:               "bad",
		"COMMUTE_DIRECTIONS__BASE_URL": ts.URL,
		"COMMUTE_METRICS__TEXTFILE":    textfile,
	})
	svc, err := New(cfg, WithLogger(logger.NopLogger{}))
	require.NoError(t, err)

	var out bytes.Buffer
	err = svc.Run(context.Background(), &out)
	assert.ErrorIs(t, err, directions.ErrDataAccess)
	assert.Empty(t, out.String(), "no partial report")

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `commute_route_requests_total{mode="BIKE",outcome="error"} 1`)
}

func TestServiceMissingAPIKey(t *testing.T) {
	cfg := loadConfig(t, nil)
	_, err := New(cfg, WithLogger(logger.NopLogger{}))
	assert.ErrorIs(t, err, directions.ErrMissingAPIKey)
}

func TestServiceMeasure(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"COMMUTE_ROUTE__PROVIDER":                 "constant",
		"COMMUTE_ROUTE__OPTIONS__DISTANCE_METERS": "1000",
	})
	svc, err := New(cfg, WithLogger(logger.NopLogger{}))
	require.NoError(t, err)

	m, err := svc.Measure(context.Background(), model.ModeCarPool)
	require.NoError(t, err)
	assert.InDelta(t, 1100.0, m.DistanceMeters, 1e-9)
}

func TestProviderRegistryTypes(t *testing.T) {
	reg := NewProviderRegistry(config.DirectionsConfig{}, logger.NopLogger{})
	assert.Equal(t, []string{config.ProviderConstant, config.ProviderDirections}, reg.Types())
}

func TestServiceRejectsNegativeConstantDistance(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"COMMUTE_ROUTE__PROVIDER":                 "constant",
		"COMMUTE_ROUTE__OPTIONS__DISTANCE_METERS": "-3",
	})
	_, err := New(cfg, WithLogger(logger.NopLogger{}))
	assert.ErrorContains(t, err, "must not be negative")
}

func TestServiceUnknownProvider(t *testing.T) {
	cfg := &config.Config{Route: config.RouteConfig{Provider: "teleport"}}
	_, err := New(cfg, WithLogger(logger.NopLogger{}))
	assert.ErrorIs(t, err, factory.ErrUnknownType)
	assert.ErrorContains(t, err, "available: constant, directions")
}
