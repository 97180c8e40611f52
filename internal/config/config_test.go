package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("Port = %q, want 4000", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.WindowPast != 7 || cfg.WindowFuture != 7 {
		t.Fatalf("window = %d/%d, want 7/7", cfg.WindowPast, cfg.WindowFuture)
	}
	if cfg.Odds.CacheTTL != time.Hour {
		t.Fatalf("odds TTL = %v, want 1h", cfg.Odds.CacheTTL)
	}
	if cfg.Weather.FallbackCity != "Tokyo" {
		t.Fatalf("fallback city = %q, want Tokyo", cfg.Weather.FallbackCity)
	}
	if cfg.Weather.FallbackLat != 35.6762 || cfg.Weather.FallbackLon != 139.6503 {
		t.Fatalf("fallback coords = %v/%v", cfg.Weather.FallbackLat, cfg.Weather.FallbackLon)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("ODDS_API_KEY", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.Odds.APIKey != "secret" {
		t.Fatalf("odds key not picked up")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "not-a-duration")
	if got := durationEnvOrDefault("POLL_INTERVAL", time.Minute); got != time.Minute {
		t.Fatalf("got %v, want default", got)
	}

	t.Setenv("POLL_INTERVAL", "-5s")
	if got := durationEnvOrDefault("POLL_INTERVAL", time.Minute); got != time.Minute {
		t.Fatalf("negative duration must fall back, got %v", got)
	}
}

func TestIntEnvRejectsNonPositive(t *testing.T) {
	t.Setenv("SCOREBOARD_WINDOW_PAST_DAYS", "0")
	if got := intEnvOrDefault("SCOREBOARD_WINDOW_PAST_DAYS", 7); got != 7 {
		t.Fatalf("got %d, want default", got)
	}
}

func TestBoolEnvVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"maybe", true},
	}
	for _, tt := range tests {
		t.Setenv("METRICS_ENABLED", tt.raw)
		if got := boolEnvOrDefault("METRICS_ENABLED", true); got != tt.want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
