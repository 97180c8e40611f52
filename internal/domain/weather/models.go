package weather

// Coordinates names a resolved location.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// Current is the normalized current-conditions payload.
type Current struct {
	Temp           int    `json:"temp"`
	Condition      string `json:"condition"`
	Humidity       int    `json:"humidity"`
	Icon           string `json:"icon"`
	City           string `json:"city"`
	WindSpeed      int    `json:"windSpeed"`
	FeelsLike      int    `json:"feelsLike"`
	TimezoneOffset int    `json:"timezone"`
}

// TempRange holds a day's rounded min/max temperatures.
type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ForecastDay is one bucketed day of the forecast.
type ForecastDay struct {
	Date      string    `json:"date"`
	Temp      TempRange `json:"temp"`
	Condition string    `json:"condition"`
	Icon      string    `json:"icon"`
}

// Forecast is the daily forecast payload.
type Forecast struct {
	Daily []ForecastDay `json:"daily"`
}

// Report bundles current conditions with the forecast for one location.
type Report struct {
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}
