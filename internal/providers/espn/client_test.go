package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestScoreboardRequestsCompactDate(t *testing.T) {
	var gotPath, gotDates string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDates = r.URL.Query().Get("dates")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events": [{"id": "401585601", "date": "2025-02-10T19:30Z", "status": {"period": 2, "displayClock": "5:21", "type": {"state": "in"}}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	resp, err := client.Scoreboard(context.Background(), time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scoreboard returned error: %v", err)
	}

	if gotPath != "/scoreboard" {
		t.Fatalf("path = %q, want /scoreboard", gotPath)
	}
	if gotDates != "20250210" {
		t.Fatalf("dates param = %q, want 20250210", gotDates)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Events))
	}

	event := resp.Events[0]
	if event.Status.Type.State != "in" || event.Status.Period != 2 {
		t.Fatalf("unexpected status: %+v", event.Status)
	}
	want := time.Date(2025, 2, 10, 19, 30, 0, 0, time.UTC)
	if !event.Date.Time.Equal(want) {
		t.Fatalf("event date = %v, want %v", event.Date.Time, want)
	}
}

func TestScoreboardSurfacesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Scoreboard(context.Background(), time.Now())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestTeamScheduleAndStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/teams/9/schedule":
			w.Write([]byte(`{"events": [{"id": "e1"}, {"id": "e2"}]}`))
		case "/teams/9/statistics":
			w.Write([]byte(`{"stats": [{"wins": "31", "losses": 18, "ppg": "114.2", "papg": 110.9}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	sched, err := client.TeamSchedule(context.Background(), "9")
	if err != nil {
		t.Fatalf("TeamSchedule returned error: %v", err)
	}
	if len(sched.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sched.Events))
	}

	stats, err := client.TeamStatistics(context.Background(), "9")
	if err != nil {
		t.Fatalf("TeamStatistics returned error: %v", err)
	}
	if stats.Wins != 31 || stats.Losses != 18 {
		t.Fatalf("record = %v-%v, want 31-18", stats.Wins, stats.Losses)
	}
	if stats.PPG != 114.2 {
		t.Fatalf("ppg = %v, want 114.2", stats.PPG)
	}
}

func TestTeamProfileRawForwardsObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"team": {"id": "9", "abbreviation": "GS", "extraField": true}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	raw, err := client.TeamProfileRaw(context.Background(), "9")
	if err != nil {
		t.Fatalf("TeamProfileRaw returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("raw profile is not valid JSON: %v", err)
	}
	// Fields we do not model must survive the proxy untouched.
	if decoded["extraField"] != true {
		t.Fatalf("extraField lost in transit: %v", decoded)
	}
}

func TestTimestampAcceptsBothLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{`"2025-02-10T19:30Z"`, time.Date(2025, 2, 10, 19, 30, 0, 0, time.UTC)},
		{`"2025-02-10T19:30:45Z"`, time.Date(2025, 2, 10, 19, 30, 45, 0, time.UTC)},
	}
	for _, tt := range tests {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(tt.raw)); err != nil {
			t.Fatalf("UnmarshalJSON(%s) error: %v", tt.raw, err)
		}
		if !ts.Time.Equal(tt.want) {
			t.Fatalf("parsed %s = %v, want %v", tt.raw, ts.Time, tt.want)
		}
	}
}

func TestNumberToleratesStringsAndGarbage(t *testing.T) {
	tests := []struct {
		raw  string
		want Number
	}{
		{`42`, 42},
		{`"42.5"`, 42.5},
		{`null`, 0},
		{`"n/a"`, 0},
	}
	for _, tt := range tests {
		var n Number
		if err := n.UnmarshalJSON([]byte(tt.raw)); err != nil {
			t.Fatalf("UnmarshalJSON(%s) error: %v", tt.raw, err)
		}
		if n != tt.want {
			t.Fatalf("Number(%s) = %v, want %v", tt.raw, n, tt.want)
		}
	}
}
