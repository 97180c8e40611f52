package weather

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	domainweather "courtside/internal/domain/weather"
	"courtside/internal/logging"
	"courtside/internal/metrics"
	"courtside/internal/providers"
	"courtside/internal/providers/openweather"
)

// ErrDisabled is returned when no weather API key is configured.
var ErrDisabled = providers.ErrDisabled

// ErrCityNotFound reports a geocode query with no match.
var ErrCityNotFound = errors.New("weather: city not found")

// Client is the slice of the OpenWeatherMap surface the service uses.
type Client interface {
	Geocode(ctx context.Context, city string) ([]openweather.GeoResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]openweather.GeoResult, error)
	Current(ctx context.Context, lat, lon float64) (openweather.CurrentResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (openweather.ForecastResponse, error)
}

// Fallback is the location served when a request carries no usable
// coordinates or city.
type Fallback struct {
	City string
	Lat  float64
	Lon  float64
}

// Service resolves locations and produces normalized weather reports.
type Service struct {
	client   Client
	fallback Fallback
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a weather Service.
func NewService(client Client, fallback Fallback, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		client:   client,
		fallback: fallback,
		logger:   logger,
		recorder: recorder,
	}
}

// Resolve turns a request into coordinates. Priority: explicit city
// query, then explicit coordinates (reverse-geocoded for a display
// name), then the configured fallback location.
func (s *Service) Resolve(ctx context.Context, city string, lat, lon *float64) (domainweather.Coordinates, error) {
	if city != "" {
		results, err := s.observe(ctx, func() ([]openweather.GeoResult, error) {
			return s.client.Geocode(ctx, city)
		})
		if err != nil {
			return domainweather.Coordinates{}, err
		}
		if len(results) == 0 {
			return domainweather.Coordinates{}, ErrCityNotFound
		}
		return domainweather.Coordinates{Lat: results[0].Lat, Lon: results[0].Lon, Name: results[0].Name}, nil
	}

	if lat != nil && lon != nil {
		coords := domainweather.Coordinates{Lat: *lat, Lon: *lon}
		results, err := s.observe(ctx, func() ([]openweather.GeoResult, error) {
			return s.client.ReverseGeocode(ctx, *lat, *lon)
		})
		if err == nil && len(results) > 0 {
			coords.Name = results[0].Name
		} else if err != nil && !errors.Is(err, ErrDisabled) {
			// A nameless location still renders; keep the coordinates.
			logging.Warn(s.logger, "reverse geocode failed", "error", err)
		}
		return coords, nil
	}

	return domainweather.Coordinates{
		Lat:  s.fallback.Lat,
		Lon:  s.fallback.Lon,
		Name: s.fallback.City,
	}, nil
}

// Report fetches current conditions and the daily forecast for coords.
func (s *Service) Report(ctx context.Context, coords domainweather.Coordinates) (domainweather.Report, error) {
	start := time.Now()
	current, err := providers.Retry(ctx, s.logger, openweather.ProviderName, func() (openweather.CurrentResponse, error) {
		return s.client.Current(ctx, coords.Lat, coords.Lon)
	})
	providers.Observe(s.logger, s.recorder, openweather.ProviderName, start, err)
	if err != nil {
		return domainweather.Report{}, err
	}

	start = time.Now()
	forecast, err := providers.Retry(ctx, s.logger, openweather.ProviderName, func() (openweather.ForecastResponse, error) {
		return s.client.Forecast(ctx, coords.Lat, coords.Lon)
	})
	providers.Observe(s.logger, s.recorder, openweather.ProviderName, start, err)
	if err != nil {
		return domainweather.Report{}, err
	}

	return domainweather.Report{
		Current:  normalizeCurrent(current, coords),
		Forecast: domainweather.Forecast{Daily: BucketForecast(forecast.List)},
	}, nil
}

func normalizeCurrent(resp openweather.CurrentResponse, coords domainweather.Coordinates) domainweather.Current {
	current := domainweather.Current{
		Temp:           roundInt(resp.Main.Temp),
		Humidity:       resp.Main.Humidity,
		City:           coords.Name,
		WindSpeed:      roundInt(resp.Wind.Speed),
		FeelsLike:      roundInt(resp.Main.FeelsLike),
		TimezoneOffset: resp.Timezone,
	}
	if current.City == "" {
		current.City = resp.Name
	}
	if len(resp.Weather) > 0 {
		current.Condition = resp.Weather[0].Main
		current.Icon = resp.Weather[0].Icon
	}
	return current
}

func (s *Service) observe(ctx context.Context, fn func() ([]openweather.GeoResult, error)) ([]openweather.GeoResult, error) {
	start := time.Now()
	results, err := fn()
	providers.Observe(s.logger, s.recorder, openweather.ProviderName, start, err)
	return results, err
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
