package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"weathersync/weather-sync/internal/db/savedlocation"
	"weathersync/weather-sync/internal/domain"
	"weathersync/weather-sync/internal/repository"
	"weathersync/weather-sync/internal/state"
)

// Engine keeps the published AggregatedState consistent with the saved-location
// stream, the current-device-location observation and user selections.
//
// It holds one subscription to the saved-location stream for its lifetime. On
// every emission it fans out one weather fetch per record concurrently, waits
// for all of them, and republishes the merged list. A generation counter drops
// results from a fan-out that was superseded by a newer emission.
type Engine struct {
	repo         repository.CityRepository
	states       *state.Container
	forecastDays int

	generation atomic.Int64
}

func NewEngine(repo repository.CityRepository, states *state.Container, forecastDays int) *Engine {
	return &Engine{
		repo:         repo,
		states:       states,
		forecastDays: forecastDays,
	}
}

func (e *Engine) State() *state.Container {
	return e.states
}

// Start performs the initial load and begins consuming the saved-location
// stream. It returns immediately; both run until ctx is cancelled.
func (e *Engine) Start(ctx context.Context) {
	go e.loadCurrentLocation(ctx, state.PhaseInitialLoading)
	go e.consumeSavedLocations(ctx)
}

// Refresh re-runs the current-location path without discarding the existing
// list. It blocks until the new snapshot is published.
func (e *Engine) Refresh(ctx context.Context) {
	e.loadCurrentLocation(ctx, state.PhaseRefreshing)
}

// loadCurrentLocation fetches current weather and forecast for the device
// position concurrently, then publishes the outcome.
func (e *Engine) loadCurrentLocation(ctx context.Context, phase state.Phase) {
	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.Phase = phase
		s.ErrorCode = state.ErrNone
		return s
	})

	var (
		wg       sync.WaitGroup
		obs      *domain.WeatherObservation
		forecast *domain.ForecastSnapshot
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		obs = e.repo.GetCurrentWeather(ctx)
	}()
	go func() {
		defer wg.Done()
		forecast = e.repo.GetForecast(ctx, e.forecastDays)
	}()
	wg.Wait()

	if obs == nil {
		log.Warn().Msg("current location weather unavailable")
		// Keep whatever list is already published; stale data beats no data.
		e.states.Update(func(s state.AggregatedState) state.AggregatedState {
			s.Phase = state.PhaseError
			s.ErrorCode = state.ErrLocationUnavailable
			return s
		})
		return
	}

	obs.IsFromCurrentLocation = true

	errCode := state.ErrNone
	if forecast == nil {
		errCode = state.ErrNetworkOrAPIFailure
	}

	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.Phase = state.PhaseReady
		s.ErrorCode = errCode
		s.Selected = obs
		if forecast != nil {
			s.Forecast = forecast
		}
		s.Cities = mergeCities(obs, tailOf(s.Cities))
		return s
	})

	// Persist the current location so it survives restarts. This runs after
	// publication so it never delays the snapshot; the store write triggers a
	// saved-location emission which re-runs the merge, and the list dedupe
	// keeps the entry from appearing twice.
	err := e.repo.SaveLocation(ctx, savedlocation.SavedLocation{
		Name:      obs.Location.Name,
		Country:   obs.Location.Country,
		Latitude:  obs.Location.Lat,
		Longitude: obs.Location.Lon,
	})
	if err != nil {
		log.Error().Err(err).Str("city", obs.Location.Name).Msg("failed to persist current location")
	}
}

// SelectCity republishes an already-listed observation as the detail selection
// and fetches its forecast. The published list is not altered.
func (e *Engine) SelectCity(ctx context.Context, obs domain.WeatherObservation) {
	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.Selected = &obs
		return s
	})

	forecast := e.repo.GetForecastByCity(ctx, obs.Location.Name, e.forecastDays)
	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		if forecast != nil {
			s.Forecast = forecast
			s.ErrorCode = state.ErrNone
		} else {
			s.ErrorCode = state.ErrNetworkOrAPIFailure
		}
		return s
	})
}

// ShowCity fetches weather and forecast for a city by name and publishes both
// into the detail-selection slot. Used when a search result is chosen.
func (e *Engine) ShowCity(ctx context.Context, name string) {
	var (
		wg       sync.WaitGroup
		obs      *domain.WeatherObservation
		forecast *domain.ForecastSnapshot
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		obs = e.repo.GetWeatherByCity(ctx, name)
	}()
	go func() {
		defer wg.Done()
		forecast = e.repo.GetForecastByCity(ctx, name, e.forecastDays)
	}()
	wg.Wait()

	if obs == nil {
		e.states.Update(func(s state.AggregatedState) state.AggregatedState {
			s.ErrorCode = state.ErrNetworkOrAPIFailure
			return s
		})
		return
	}

	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.Selected = obs
		if forecast != nil {
			s.Forecast = forecast
		}
		s.ErrorCode = state.ErrNone
		return s
	})
}

// SaveCity persists a location; the resulting stream emission refreshes the list.
func (e *Engine) SaveCity(ctx context.Context, loc savedlocation.SavedLocation) error {
	return e.repo.SaveLocation(ctx, loc)
}

// DeleteCity removes a location; the resulting stream emission refreshes the list.
func (e *Engine) DeleteCity(ctx context.Context, name string) error {
	return e.repo.DeleteLocation(ctx, name)
}

func (e *Engine) consumeSavedLocations(ctx context.Context) {
	emissions := e.repo.ObserveSavedLocations(ctx)

	for emission := range emissions {
		if emission.Err != nil {
			e.states.Update(func(s state.AggregatedState) state.AggregatedState {
				s.ErrorCode = state.ErrPersistenceReadFailure
				return s
			})
			continue
		}

		gen := e.generation.Add(1)
		go e.refreshCities(ctx, gen, emission.Records)
	}
}

// refreshCities fans out one weather fetch per saved record, waits for all of
// them, then merges the successes behind the current-location entry. A failed
// per-city fetch omits that city; it never fails the whole refresh.
func (e *Engine) refreshCities(ctx context.Context, gen int64, records []savedlocation.SavedLocation) {
	results := make([]*domain.WeatherObservation, len(records))

	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = e.repo.GetWeatherByCity(ctx, name)
		}(i, rec.Name)
	}
	wg.Wait()

	fetched := make([]domain.WeatherObservation, 0, len(results))
	for _, r := range results {
		if r != nil {
			fetched = append(fetched, *r)
		}
	}

	stale := false
	e.states.Update(func(s state.AggregatedState) state.AggregatedState {
		// The generation is re-read under the container lock: a newer emission
		// bumps it before publishing, so a superseded fan-out can never land
		// after the newer list.
		if e.generation.Load() != gen {
			stale = true
			return s
		}
		s.Cities = mergeCities(currentOf(s.Cities), fetched)
		if s.Phase == state.PhaseIdle || s.Phase == state.PhaseInitialLoading {
			s.Phase = state.PhaseReady
		}
		return s
	})
	if stale {
		log.Debug().Int64("generation", gen).Msg("dropped stale city refresh")
	}
}

// mergeCities places the current-location observation first and appends the
// saved-city observations in order, skipping any entry that shares the current
// one's identity key.
func mergeCities(current *domain.WeatherObservation, saved []domain.WeatherObservation) []domain.WeatherObservation {
	merged := make([]domain.WeatherObservation, 0, len(saved)+1)
	if current != nil {
		merged = append(merged, *current)
	}
	for _, obs := range saved {
		if current != nil && obs.Location.Key() == current.Location.Key() {
			continue
		}
		obs.IsFromCurrentLocation = false
		merged = append(merged, obs)
	}
	return merged
}

// currentOf returns the current-location entry of a published list, if any.
func currentOf(cities []domain.WeatherObservation) *domain.WeatherObservation {
	for _, obs := range cities {
		if obs.IsFromCurrentLocation {
			c := obs
			return &c
		}
	}
	return nil
}

// tailOf returns the saved-city entries of a published list, without the
// current-location head.
func tailOf(cities []domain.WeatherObservation) []domain.WeatherObservation {
	tail := make([]domain.WeatherObservation, 0, len(cities))
	for _, obs := range cities {
		if !obs.IsFromCurrentLocation {
			tail = append(tail, obs)
		}
	}
	return tail
}
