package domain

// LocationInfo describes a resolved place as returned by the weather API.
type LocationInfo struct {
	Name       string  `json:"name"`
	Region     string  `json:"region"`
	Country    string  `json:"country"`
	TimezoneID string  `json:"timezone_id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	LocalTime  string  `json:"local_time"`
}

// Key is the identity used to deduplicate observations: two locations with the
// same name and region are considered the same place.
func (l LocationInfo) Key() string {
	return l.Name + "|" + l.Region
}

type WeatherCondition struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url"`
	Code    int    `json:"code"`
}

type CurrentConditions struct {
	TempC      float64          `json:"temp_c"`
	Condition  WeatherCondition `json:"condition"`
	WindKph    float64          `json:"wind_kph"`
	WindDir    string           `json:"wind_dir"`
	UV         float64          `json:"uv"`
	Humidity   int              `json:"humidity"`
	FeelsLikeC float64          `json:"feelslike_c"`
	IsDay      int              `json:"is_day"`
	PressureMb float64          `json:"pressure_mb"`
	PrecipMm   float64          `json:"precip_mm"`
}

// WeatherObservation is a single current-weather reading tied to a location.
// At most one observation in a published list may have IsFromCurrentLocation set.
type WeatherObservation struct {
	Location              LocationInfo      `json:"location"`
	Current               CurrentConditions `json:"current"`
	IsFromCurrentLocation bool              `json:"is_from_current_location"`
}

type ForecastDay struct {
	Date          string           `json:"date"`
	MaxTempC      float64          `json:"max_temp_c"`
	MinTempC      float64          `json:"min_temp_c"`
	AvgTempC      float64          `json:"avg_temp_c"`
	Condition     WeatherCondition `json:"condition"`
	Sunrise       string           `json:"sunrise"`
	Sunset        string           `json:"sunset"`
	ChanceOfRain  int              `json:"chance_of_rain"`
	TotalPrecipMm float64          `json:"total_precip_mm"`
	UVIndex       float64          `json:"uv_index"`
	AvgHumidity   float64          `json:"avg_humidity"`
}

// ForecastSnapshot holds per-day forecasts ordered by date ascending; when
// present, the first element represents today.
type ForecastSnapshot struct {
	Days []ForecastDay `json:"days"`
}

// SearchResult is a lightweight location candidate from free-text search.
// It is never persisted.
type SearchResult struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
