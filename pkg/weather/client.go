package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned when no API key is set
	ErrNotConfigured = errors.New("weather forecast is not configured")
	// ErrInvalidCoordinates is returned for latitudes or longitudes out of range
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrUpstream is returned when the forecast provider fails
	ErrUpstream = errors.New("weather provider error")
)

// maxForecastBytes caps the relayed forecast body
const maxForecastBytes = 4 << 20

// Client fetches forecasts from an OpenWeatherMap compatible API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a forecast client. An empty apiKey leaves the client
// unconfigured and every call returns ErrNotConfigured.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether an API key is set
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ParseCoordinates parses and range-checks a latitude/longitude pair
func ParseCoordinates(lat, lon string) (float64, float64, error) {
	latV, err := strconv.ParseFloat(lat, 64)
	if err != nil || !(latV >= -90 && latV <= 90) {
		return 0, 0, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, lat)
	}
	lonV, err := strconv.ParseFloat(lon, 64)
	if err != nil || !(lonV >= -180 && lonV <= 180) {
		return 0, 0, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, lon)
	}
	return latV, lonV, nil
}

// Forecast returns the provider's metric forecast for a location unchanged
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the URL carries the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxForecastBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrUpstream)
	}

	return json.RawMessage(body), nil
}
