package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"weathersync/weather-sync/internal/db/savedlocation"
	"weathersync/weather-sync/internal/domain"
	"weathersync/weather-sync/internal/location"
	"weathersync/weather-sync/internal/weatherapi"
)

// CityRepository is the single facade over the weather API gateway, the
// device-location source and the saved-location store.
//
// Fetch operations never return an error: any failure (no location, transport
// error, bad response) yields a nil result and a diagnostic log line. Callers
// cannot distinguish "no network" from "bad response"; that collapse is
// deliberate.
type CityRepository interface {
	GetCurrentWeather(ctx context.Context) *domain.WeatherObservation
	GetForecast(ctx context.Context, days int) *domain.ForecastSnapshot
	GetWeatherByCity(ctx context.Context, name string) *domain.WeatherObservation
	GetForecastByCity(ctx context.Context, name string, days int) *domain.ForecastSnapshot
	Search(ctx context.Context, text string) []domain.SearchResult

	ObserveSavedLocations(ctx context.Context) <-chan savedlocation.Emission
	SaveLocation(ctx context.Context, loc savedlocation.SavedLocation) error
	DeleteLocation(ctx context.Context, name string) error
}

type cityRepository struct {
	api       weatherapi.Client
	locations location.Provider
	store     savedlocation.Repository
}

func NewCityRepository(api weatherapi.Client, locations location.Provider, store savedlocation.Repository) CityRepository {
	return &cityRepository{
		api:       api,
		locations: locations,
		store:     store,
	}
}

// GetCurrentWeather resolves the device coordinates and fetches the current
// conditions there. Returns nil if the location is unavailable.
func (r *cityRepository) GetCurrentWeather(ctx context.Context) *domain.WeatherObservation {
	query, ok := r.deviceQuery(ctx)
	if !ok {
		return nil
	}

	dto := r.api.FetchCurrent(ctx, query)
	if dto == nil {
		return nil
	}

	obs := weatherapi.MapCurrent(dto)
	return &obs
}

func (r *cityRepository) GetForecast(ctx context.Context, days int) *domain.ForecastSnapshot {
	query, ok := r.deviceQuery(ctx)
	if !ok {
		return nil
	}

	dto := r.api.FetchForecast(ctx, query, days)
	if dto == nil {
		return nil
	}

	snapshot := weatherapi.MapForecast(dto)
	return &snapshot
}

func (r *cityRepository) GetWeatherByCity(ctx context.Context, name string) *domain.WeatherObservation {
	dto := r.api.FetchCurrent(ctx, name)
	if dto == nil {
		return nil
	}

	obs := weatherapi.MapCurrent(dto)
	return &obs
}

func (r *cityRepository) GetForecastByCity(ctx context.Context, name string, days int) *domain.ForecastSnapshot {
	dto := r.api.FetchForecast(ctx, name, days)
	if dto == nil {
		return nil
	}

	snapshot := weatherapi.MapForecast(dto)
	return &snapshot
}

func (r *cityRepository) Search(ctx context.Context, text string) []domain.SearchResult {
	dtos := r.api.Search(ctx, text)
	if dtos == nil {
		return nil
	}
	return weatherapi.MapSearchResults(dtos)
}

func (r *cityRepository) ObserveSavedLocations(ctx context.Context) <-chan savedlocation.Emission {
	return r.store.Observe(ctx)
}

func (r *cityRepository) SaveLocation(ctx context.Context, loc savedlocation.SavedLocation) error {
	return r.store.Save(ctx, loc)
}

func (r *cityRepository) DeleteLocation(ctx context.Context, name string) error {
	return r.store.Delete(ctx, name)
}

func (r *cityRepository) deviceQuery(ctx context.Context) (string, bool) {
	coords, err := r.locations.CurrentLocation(ctx)
	if err != nil {
		log.Error().Err(err).Msg("device location not available")
		return "", false
	}
	if coords == nil {
		log.Error().Msg("device location not available")
		return "", false
	}
	return fmt.Sprintf("%f,%f", coords.Latitude, coords.Longitude), true
}
