package schedule

import (
	"testing"
	"time"

	domaingames "courtside/internal/domain/games"
)

func historyFromResults(results []bool) []domaingames.ProcessedGame {
	games := make([]domaingames.ProcessedGame, 0, len(results))
	base := time.Date(2025, 1, 30, 19, 0, 0, 0, time.UTC)
	for i, won := range results {
		games = append(games, domaingames.ProcessedGame{
			ID:   string(rune('a' + i)),
			Date: base.AddDate(0, 0, -i),
			Won:  won,
		})
	}
	return games
}

func TestComputeStatsWinPct(t *testing.T) {
	tests := []struct {
		name   string
		wins   int
		losses int
		want   float64
	}{
		{"no games", 0, 0, 0},
		{"all wins", 4, 0, 1},
		{"even split", 5, 5, 0.5},
		{"negative counts clamp", -3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.wins, tt.losses, 0, 0, nil)
			if stats.WinPct != tt.want {
				t.Fatalf("WinPct = %v, want %v", stats.WinPct, tt.want)
			}
		})
	}
}

func TestComputeStatsStreak(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    string
	}{
		{"empty history", nil, "0"},
		{"two game win streak", []bool{true, true, false, true}, "2W"},
		{"single loss", []bool{false, true, true}, "1L"},
		{"all losses", []bool{false, false, false}, "3L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(0, 0, 0, 0, historyFromResults(tt.results))
			if stats.Streak != tt.want {
				t.Fatalf("Streak = %q, want %q", stats.Streak, tt.want)
			}
		})
	}
}

func TestComputeStatsLastTenRecord(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    string
	}{
		{"no games", nil, "0-0"},
		{"three games two wins", []bool{true, false, true}, "2-1"},
		{"twelve games counts ten", []bool{
			true, true, true, true, true,
			true, true, false, false, false,
			true, true,
		}, "7-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(0, 0, 0, 0, historyFromResults(tt.results))
			if stats.LastTenRecord != tt.want {
				t.Fatalf("LastTenRecord = %q, want %q", stats.LastTenRecord, tt.want)
			}
		})
	}
}

func TestComputeStatsRoundsAverages(t *testing.T) {
	stats := ComputeStats(10, 5, 112.347, 108.851, nil)
	if stats.PointsPerGame != 112.3 {
		t.Fatalf("PointsPerGame = %v, want 112.3", stats.PointsPerGame)
	}
	if stats.PointsAllowed != 108.9 {
		t.Fatalf("PointsAllowed = %v, want 108.9", stats.PointsAllowed)
	}
}
