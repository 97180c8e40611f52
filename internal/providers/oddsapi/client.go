package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courtside/internal/providers"
)

// Config controls how the odds client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches the full NBA odds board from the-odds-api.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	client := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     cfg.APIKey,
		httpClient: client,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Board retrieves the current full odds board: every quoted NBA game with
// moneyline and spread markets in American format.
// Without an API key it returns providers.ErrDisabled; quota exhaustion
// surfaces as a providers.QuotaError so callers can degrade gracefully.
func (c *Client) Board(ctx context.Context) ([]Game, error) {
	if !c.Enabled() {
		return nil, providers.ErrDisabled
	}

	endpoint := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, sportKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("regions", regionUS)
	q.Set("markets", marketsParam)
	q.Set("oddsFormat", formatAmerica)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(body))
		if resp.StatusCode == http.StatusUnauthorized && strings.Contains(msg, quotaMessage) {
			return nil, &providers.QuotaError{
				Provider:   ProviderName,
				StatusCode: resp.StatusCode,
				Message:    msg,
			}
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &providers.RateLimitError{
				Provider:   ProviderName,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp),
				Message:    msg,
			}
		}
		return nil, fmt.Errorf("oddsapi: unexpected status %d: %s", resp.StatusCode, msg)
	}

	var board []Game
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, err
	}
	return board, nil
}

func parseRetryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	if d, err := time.ParseDuration(raw + "s"); err == nil {
		return d
	}
	return 0
}
