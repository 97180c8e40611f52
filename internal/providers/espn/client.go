package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"courtside/internal/timeutil"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboard, schedule, profile and statistics payloads
// from the ESPN site API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Scoreboard retrieves all games scheduled on the given calendar date.
func (c *Client) Scoreboard(ctx context.Context, date time.Time) (ScoreboardResponse, error) {
	var payload ScoreboardResponse
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.baseURL, timeutil.FormatCompactDate(date))
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return ScoreboardResponse{}, err
	}
	return payload, nil
}

// TeamSchedule retrieves a team's raw event list.
func (c *Client) TeamSchedule(ctx context.Context, teamID string) (ScheduleResponse, error) {
	var payload ScheduleResponse
	url := fmt.Sprintf("%s/teams/%s/schedule", c.baseURL, teamID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return ScheduleResponse{}, err
	}
	return payload, nil
}

// TeamProfileRaw retrieves the raw team profile object for proxying.
func (c *Client) TeamProfileRaw(ctx context.Context, teamID string) (json.RawMessage, error) {
	var payload TeamProfileResponse
	url := fmt.Sprintf("%s/teams/%s", c.baseURL, teamID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Team, nil
}

// TeamProfile retrieves and decodes the profile fields the summary needs.
func (c *Client) TeamProfile(ctx context.Context, teamID string) (TeamProfile, error) {
	raw, err := c.TeamProfileRaw(ctx, teamID)
	if err != nil {
		return TeamProfile{}, err
	}
	var profile TeamProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return TeamProfile{}, err
	}
	return profile, nil
}

// TeamStatisticsRaw retrieves the raw statistics array for proxying.
func (c *Client) TeamStatisticsRaw(ctx context.Context, teamID string) (json.RawMessage, error) {
	var payload TeamStatisticsResponse
	url := fmt.Sprintf("%s/teams/%s/statistics", c.baseURL, teamID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Stats, nil
}

// TeamStatistics retrieves the first statistics line for a team.
// A missing or empty payload yields a zero StatLine, not an error.
func (c *Client) TeamStatistics(ctx context.Context, teamID string) (StatLine, error) {
	raw, err := c.TeamStatisticsRaw(ctx, teamID)
	if err != nil {
		return StatLine{}, err
	}
	return parseStatLine(raw), nil
}

func parseStatLine(raw json.RawMessage) StatLine {
	if len(raw) == 0 {
		return StatLine{}
	}
	var lines []StatLine
	if err := json.Unmarshal(raw, &lines); err == nil && len(lines) > 0 {
		return lines[0]
	}
	var line StatLine
	if err := json.Unmarshal(raw, &line); err == nil {
		return line
	}
	return StatLine{}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
