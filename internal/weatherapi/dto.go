package weatherapi

// DTOs mirror the weatherapi.com JSON payloads. Numeric fields that are absent
// in a payload decode to their zero value (e.g. pressure_mb -> 0.0); that
// fallback is intentional and relied on by the mapper.

type LocationDTO struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type ConditionDTO struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type CurrentDTO struct {
	TempC      float64      `json:"temp_c"`
	Condition  ConditionDTO `json:"condition"`
	Humidity   int          `json:"humidity"`
	WindDir    string       `json:"wind_dir"`
	WindKph    float64      `json:"wind_kph"`
	FeelslikeC float64      `json:"feelslike_c"`
	UV         float64      `json:"uv"`
	IsDay      int          `json:"is_day"`
	PressureMb float64      `json:"pressure_mb"`
	PrecipMm   float64      `json:"precip_mm"`
}

type CurrentResponse struct {
	Location LocationDTO `json:"location"`
	Current  CurrentDTO  `json:"current"`
}

type AstroDTO struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type DayDTO struct {
	MaxTempC      float64      `json:"maxtemp_c"`
	MinTempC      float64      `json:"mintemp_c"`
	AvgTempC      float64      `json:"avgtemp_c"`
	MaxWindKph    float64      `json:"maxwind_kph"`
	TotalPrecipMm float64      `json:"totalprecip_mm"`
	AvgHumidity   float64      `json:"avghumidity"`
	ChanceOfRain  int          `json:"daily_chance_of_rain"`
	Condition     ConditionDTO `json:"condition"`
	UV            float64      `json:"uv"`
}

type ForecastDayDTO struct {
	Date      string   `json:"date"`
	DateEpoch int64    `json:"date_epoch"`
	Day       DayDTO   `json:"day"`
	Astro     AstroDTO `json:"astro"`
}

type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday"`
}

type ForecastResponse struct {
	Location LocationDTO `json:"location"`
	Current  CurrentDTO  `json:"current"`
	Forecast ForecastDTO `json:"forecast"`
}

type SearchLocationDTO struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}
