package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"courtside/internal/providers"
)

// ProviderName identifies this client in logs and metrics.
const ProviderName = "openweather"

const (
	defaultBaseURL     = "https://api.openweathermap.org/data/2.5"
	defaultGeoBaseURL  = "https://api.openweathermap.org/geo/1.0"
	defaultHTTPTimeout = 10 * time.Second

	unitsMetric = "metric"
)

// Config controls how the weather client reaches OpenWeatherMap.
type Config struct {
	BaseURL    string
	GeoBaseURL string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches geocoding, current conditions and forecast data.
type Client struct {
	baseURL    string
	geoBaseURL string
	apiKey     string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a weather client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	geoBase := cfg.GeoBaseURL
	if geoBase == "" {
		geoBase = defaultGeoBaseURL
	}
	client := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		geoBaseURL: strings.TrimSuffix(geoBase, "/"),
		apiKey:     cfg.APIKey,
		httpClient: client,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Geocode resolves a city name to coordinates. At most one match is
// requested; an empty result means the city is unknown upstream.
func (c *Client) Geocode(ctx context.Context, city string) ([]GeoResult, error) {
	if !c.Enabled() {
		return nil, providers.ErrDisabled
	}
	q := url.Values{}
	q.Set("q", city)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []GeoResult
	if err := c.getJSON(ctx, c.geoBaseURL+"/direct?"+q.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ReverseGeocode resolves coordinates to a display name.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) ([]GeoResult, error) {
	if !c.Enabled() {
		return nil, providers.ErrDisabled
	}
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []GeoResult
	if err := c.getJSON(ctx, c.geoBaseURL+"/reverse?"+q.Encode(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Current retrieves current conditions for the coordinates in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (CurrentResponse, error) {
	if !c.Enabled() {
		return CurrentResponse{}, providers.ErrDisabled
	}
	var payload CurrentResponse
	if err := c.getJSON(ctx, c.observationURL("weather", lat, lon), &payload); err != nil {
		return CurrentResponse{}, err
	}
	return payload, nil
}

// Forecast retrieves the 5-day/3-hour forecast for the coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (ForecastResponse, error) {
	if !c.Enabled() {
		return ForecastResponse{}, providers.ErrDisabled
	}
	var payload ForecastResponse
	if err := c.getJSON(ctx, c.observationURL("forecast", lat, lon), &payload); err != nil {
		return ForecastResponse{}, err
	}
	return payload, nil
}

func (c *Client) observationURL(endpoint string, lat, lon float64) string {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("units", unitsMetric)
	q.Set("appid", c.apiKey)
	return fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, q.Encode())
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("openweather: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
