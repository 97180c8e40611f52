package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Timestamp wraps time.Time to unmarshal both full RFC3339 timestamps and
// the shorter minute-precision strings some ESPN endpoints return.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}

	var parseErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}
	return parseErr
}

// Number tolerates upstream stat fields arriving as JSON numbers or as
// quoted strings. Malformed values decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := bytes.Trim(b, `"`)
	if len(raw) == 0 || string(raw) == "null" {
		*n = 0
		return nil
	}
	val, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(val)
	return nil
}

// ScoreboardResponse is the dated scoreboard payload.
type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

// ScheduleResponse is a team's event list.
type ScheduleResponse struct {
	Events []Event `json:"events"`
}

// Event is one scheduled or played game.
type Event struct {
	ID           string        `json:"id"`
	Date         Timestamp     `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
	Status       Status        `json:"status"`
}

// Competition nests the competitor pair for an event.
type Competition struct {
	ID          string       `json:"id"`
	Date        Timestamp    `json:"date"`
	Competitors []Competitor `json:"competitors"`
	Status      Status       `json:"status"`
}

// Competitor is one side of a competition. Scores arrive as strings.
type Competitor struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     Team   `json:"team"`
}

// Team is the upstream team record embedded in competitors.
type Team struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

// Status carries the event lifecycle state.
type Status struct {
	Clock        float64    `json:"clock"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

// StatusType states: "pre", "in", "post".
type StatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

// TeamProfileResponse wraps the team profile endpoint.
type TeamProfileResponse struct {
	Team json.RawMessage `json:"team"`
}

// TeamProfile is the subset of the profile payload the summary pipeline
// needs; the proxy forwards the raw object untouched.
type TeamProfile struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Logos        []Logo `json:"logos"`
}

// Logo is one team logo reference.
type Logo struct {
	Href string `json:"href"`
}

// TeamStatisticsResponse wraps the statistics endpoint.
type TeamStatisticsResponse struct {
	Stats json.RawMessage `json:"stats"`
}

// StatLine is one entry of the statistics payload. Fields tolerate
// string and numeric encodings.
type StatLine struct {
	Wins   Number `json:"wins"`
	Losses Number `json:"losses"`
	PPG    Number `json:"ppg"`
	PAPG   Number `json:"papg"`
}
