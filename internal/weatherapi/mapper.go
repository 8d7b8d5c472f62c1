package weatherapi

import (
	"strings"

	"weathersync/weather-sync/internal/domain"
)

// The API returns protocol-relative icon URLs ("//cdn.weatherapi.com/...");
// mapping normalizes them to absolute https URLs.

func mapCondition(dto ConditionDTO) domain.WeatherCondition {
	icon := dto.Icon
	if strings.HasPrefix(icon, "//") {
		icon = "https:" + icon
	}
	return domain.WeatherCondition{
		Text:    dto.Text,
		IconURL: icon,
		Code:    dto.Code,
	}
}

func mapLocation(dto LocationDTO) domain.LocationInfo {
	return domain.LocationInfo{
		Name:       dto.Name,
		Region:     dto.Region,
		Country:    dto.Country,
		TimezoneID: dto.TzID,
		Lat:        dto.Lat,
		Lon:        dto.Lon,
		LocalTime:  dto.Localtime,
	}
}

// MapCurrent converts a raw current-weather payload into a domain observation.
func MapCurrent(dto *CurrentResponse) domain.WeatherObservation {
	return domain.WeatherObservation{
		Location: mapLocation(dto.Location),
		Current: domain.CurrentConditions{
			TempC:      dto.Current.TempC,
			Condition:  mapCondition(dto.Current.Condition),
			WindKph:    dto.Current.WindKph,
			WindDir:    dto.Current.WindDir,
			UV:         dto.Current.UV,
			Humidity:   dto.Current.Humidity,
			FeelsLikeC: dto.Current.FeelslikeC,
			IsDay:      dto.Current.IsDay,
			PressureMb: dto.Current.PressureMb,
			PrecipMm:   dto.Current.PrecipMm,
		},
	}
}

// MapForecast converts a raw forecast payload into a domain snapshot. Days are
// mapped in the order the API returns them, which is already date-ascending.
func MapForecast(dto *ForecastResponse) domain.ForecastSnapshot {
	days := make([]domain.ForecastDay, 0, len(dto.Forecast.ForecastDay))
	for _, fd := range dto.Forecast.ForecastDay {
		days = append(days, domain.ForecastDay{
			Date:          fd.Date,
			MaxTempC:      fd.Day.MaxTempC,
			MinTempC:      fd.Day.MinTempC,
			AvgTempC:      fd.Day.AvgTempC,
			Condition:     mapCondition(fd.Day.Condition),
			Sunrise:       fd.Astro.Sunrise,
			Sunset:        fd.Astro.Sunset,
			ChanceOfRain:  fd.Day.ChanceOfRain,
			TotalPrecipMm: fd.Day.TotalPrecipMm,
			UVIndex:       fd.Day.UV,
			AvgHumidity:   fd.Day.AvgHumidity,
		})
	}
	return domain.ForecastSnapshot{Days: days}
}

// MapSearchResults converts raw search candidates into domain results.
func MapSearchResults(dtos []SearchLocationDTO) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(dtos))
	for _, dto := range dtos {
		results = append(results, domain.SearchResult{
			Name:    dto.Name,
			Region:  dto.Region,
			Country: dto.Country,
			Lat:     dto.Lat,
			Lon:     dto.Lon,
		})
	}
	return results
}
