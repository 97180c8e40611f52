package weather

import (
	"testing"
	"time"

	"courtside/internal/providers/openweather"
)

func entry(at time.Time, min, max float64, condition, icon string) openweather.ForecastEntry {
	return openweather.ForecastEntry{
		Dt:      at.Unix(),
		Main:    openweather.Readings{TempMin: min, TempMax: max},
		Weather: []openweather.Condition{{Main: condition, Icon: icon}},
	}
}

func TestBucketForecastCollapsesDays(t *testing.T) {
	day := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	entries := []openweather.ForecastEntry{
		entry(day.Add(6*time.Hour), 2.4, 5.1, "Clouds", "04d"),
		entry(day.Add(12*time.Hour), 4.0, 9.6, "Clear", "01d"),
		entry(day.Add(18*time.Hour), 3.1, 7.2, "Clear", "01d"),
		entry(day.AddDate(0, 0, 1).Add(12*time.Hour), -1.2, 3.4, "Snow", "13d"),
	}

	days := BucketForecast(entries)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	first := days[0]
	if first.Date != "2025-02-10" {
		t.Fatalf("first day = %s, want 2025-02-10", first.Date)
	}
	if first.Temp.Min != 2 || first.Temp.Max != 10 {
		t.Fatalf("temp range = %d/%d, want 2/10", first.Temp.Min, first.Temp.Max)
	}
	// Clear appears twice, Clouds once.
	if first.Condition != "Clear" || first.Icon != "01d" {
		t.Fatalf("condition = %s/%s, want Clear/01d", first.Condition, first.Icon)
	}

	if days[1].Date != "2025-02-11" || days[1].Condition != "Snow" {
		t.Fatalf("second day = %+v", days[1])
	}
}

func TestBucketForecastCapsAtSevenDays(t *testing.T) {
	day := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	var entries []openweather.ForecastEntry
	for i := 0; i < 9; i++ {
		entries = append(entries, entry(day.AddDate(0, 0, i), 1, 2, "Clear", "01d"))
	}

	days := BucketForecast(entries)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date != "2025-02-10" || days[6].Date != "2025-02-16" {
		t.Fatalf("unexpected range %s..%s", days[0].Date, days[6].Date)
	}
}

func TestBucketForecastEmptyInput(t *testing.T) {
	if days := BucketForecast(nil); len(days) != 0 {
		t.Fatalf("expected no days, got %d", len(days))
	}
}
