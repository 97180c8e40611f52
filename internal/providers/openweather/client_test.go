package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtside/internal/providers"
)

func TestDisabledWithoutKey(t *testing.T) {
	client := NewClient(Config{})
	if client.Enabled() {
		t.Fatalf("client without key must report disabled")
	}
	if _, err := client.Current(context.Background(), 0, 0); !errors.Is(err, providers.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := client.Geocode(context.Background(), "Tokyo"); !errors.Is(err, providers.ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestGeocodeRequestsSingleMatch(t *testing.T) {
	var gotQuery, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/direct" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "Tokyo", "lat": 35.6762, "lon": 139.6503}]`))
	}))
	defer srv.Close()

	client := NewClient(Config{GeoBaseURL: srv.URL, APIKey: "key"})
	results, err := client.Geocode(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if gotQuery != "Tokyo" || gotLimit != "1" {
		t.Fatalf("query = %q limit = %q", gotQuery, gotLimit)
	}
	if len(results) != 1 || results[0].Lat != 35.6762 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestCurrentUsesMetricUnits(t *testing.T) {
	var gotUnits string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			http.NotFound(w, r)
			return
		}
		gotUnits = r.URL.Query().Get("units")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 8.4, "feels_like": 6.1, "humidity": 61},
			"weather": [{"main": "Clouds", "icon": "04d"}],
			"wind": {"speed": 3.6},
			"timezone": 32400,
			"name": "Tokyo"
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "key"})
	current, err := client.Current(context.Background(), 35.6762, 139.6503)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if gotUnits != "metric" {
		t.Fatalf("units = %q, want metric", gotUnits)
	}
	if current.Main.Temp != 8.4 || current.Main.Humidity != 61 {
		t.Fatalf("unexpected readings: %+v", current.Main)
	}
	if len(current.Weather) != 1 || current.Weather[0].Main != "Clouds" {
		t.Fatalf("unexpected conditions: %+v", current.Weather)
	}
}

func TestForecastDecodesEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list": [
			{"dt": 1739188800, "main": {"temp_min": 4.0, "temp_max": 9.0}, "weather": [{"main": "Clear", "icon": "01d"}]},
			{"dt": 1739199600, "main": {"temp_min": 6.0, "temp_max": 11.0}, "weather": [{"main": "Clear", "icon": "01d"}]}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "key"})
	forecast, err := client.Forecast(context.Background(), 35.6762, 139.6503)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if len(forecast.List) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(forecast.List))
	}
	if forecast.List[0].Main.TempMax != 9.0 {
		t.Fatalf("temp_max = %v, want 9.0", forecast.List[0].Main.TempMax)
	}
}
