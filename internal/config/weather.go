package config

const (
	envWeatherBaseURL    = "OPENWEATHER_BASE_URL"
	envWeatherGeoBaseURL = "OPENWEATHER_GEO_BASE_URL"
	envWeatherAPIKey     = "OPENWEATHER_API_KEY"
	envWeatherFallback   = "WEATHER_FALLBACK_CITY"
	envWeatherFallbackLa = "WEATHER_FALLBACK_LAT"
	envWeatherFallbackLo = "WEATHER_FALLBACK_LON"

	defaultWeatherBaseURL    = "https://api.openweathermap.org/data/2.5"
	defaultWeatherGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
	defaultFallbackCity      = "Tokyo"
	defaultFallbackLat       = 35.6762
	defaultFallbackLon       = 139.6503
)

// WeatherConfig controls the OpenWeatherMap client. The fallback location
// is served when a request carries no usable coordinates or city.
type WeatherConfig struct {
	BaseURL      string
	GeoBaseURL   string
	APIKey       string
	FallbackCity string
	FallbackLat  float64
	FallbackLon  float64
}

func loadWeather() WeatherConfig {
	return WeatherConfig{
		BaseURL:      envOrDefault(envWeatherBaseURL, defaultWeatherBaseURL),
		GeoBaseURL:   envOrDefault(envWeatherGeoBaseURL, defaultWeatherGeoBaseURL),
		APIKey:       envOrDefault(envWeatherAPIKey, ""),
		FallbackCity: envOrDefault(envWeatherFallback, defaultFallbackCity),
		FallbackLat:  floatEnvOrDefault(envWeatherFallbackLa, defaultFallbackLat),
		FallbackLon:  floatEnvOrDefault(envWeatherFallbackLo, defaultFallbackLon),
	}
}
