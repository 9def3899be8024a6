// Package directions measures commute routes with the Google Directions API.
package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/core/route"
	"github.com/kilianp07/commuteco2/infra/logger"
)

// DefaultBaseURL is the Google Directions API JSON endpoint.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

const defaultTimeout = 10 * time.Second

// Client queries the Directions API once per measured route. It never retries.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	perMode bool
	log     logger.Logger
}

var _ route.Provider = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at another endpoint, e.g. a mock server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the timeout of the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithPerModeRouting sends the travel mode of each commute mode to the API.
// When disabled every mode is measured on the driving route.
func WithPerModeRouting(enabled bool) Option {
	return func(c *Client) { c.perMode = enabled }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a Directions API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
		log:     logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// requestURL builds the GET url for a route. The key is part of the query, so
// the result must not be logged as is.
func (c *Client) requestURL(origin, destination string, mode model.Mode) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("origin", origin)
	q.Set("destination", destination)
	if c.perMode {
		q.Set("mode", mode.TravelMode())
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// MeasureRoute implements route.Provider. It returns the distance and
// duration of the first leg of the first route, with the car pool detour
// applied.
func (c *Client) MeasureRoute(ctx context.Context, origin, destination string, mode model.Mode) (model.Measurement, error) {
	reqURL, err := c.requestURL(origin, destination, mode)
	if err != nil {
		return model.Measurement{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Measurement{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return model.Measurement{}, fmt.Errorf("%w: failed to send request: %w", ErrDataAccess, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warnf("close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Measurement{}, fmt.Errorf("%w: failed to read response: %w", ErrDataAccess, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Measurement{}, fmt.Errorf("%w: unexpected status code: %d, body: %s", ErrDataAccess, resp.StatusCode, body)
	}

	var payload Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.Measurement{}, fmt.Errorf("%w: failed to decode response: %w", ErrDataAccess, err)
	}
	if payload.Status != "" && payload.Status != "OK" {
		return model.Measurement{}, &APIError{Status: payload.Status, Message: payload.ErrorMessage}
	}
	leg := payload.firstLeg()
	if leg == nil {
		return model.Measurement{}, fmt.Errorf("%w: missing route data in response", ErrDataAccess)
	}
	if !leg.measured() {
		return model.Measurement{}, fmt.Errorf("%w: missing distance/duration value", ErrDataAccess)
	}
	distance, duration := *leg.Distance.Value, *leg.Duration.Value

	c.log.Debugw("directions response", map[string]any{
		"mode":       mode.String(),
		"distance_m": distance,
		"duration_s": duration,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return model.Measurement{
		DistanceMeters: route.AdjustDistance(float64(distance), mode),
		Duration:       time.Duration(duration) * time.Second,
	}, nil
}
