package openweather

// GeoResult is one geocoding match.
type GeoResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Condition is one weather descriptor entry.
type Condition struct {
	Main string `json:"main"`
	Icon string `json:"icon"`
}

// Readings carries the numeric observation fields.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// Wind carries wind observations.
type Wind struct {
	Speed float64 `json:"speed"`
}

// CurrentResponse is the current-conditions payload.
type CurrentResponse struct {
	Main     Readings    `json:"main"`
	Weather  []Condition `json:"weather"`
	Wind     Wind        `json:"wind"`
	Timezone int         `json:"timezone"`
	Name     string      `json:"name"`
	Message  string      `json:"message"`
}

// ForecastEntry is one 3-hour step of the forecast.
type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
}

// ForecastResponse is the 5-day/3-hour forecast payload.
type ForecastResponse struct {
	List    []ForecastEntry `json:"list"`
	Message any             `json:"message"`
}
