package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"weathersync/weather-sync/internal/db/savedlocation"
	"weathersync/weather-sync/internal/engine"
	"weathersync/weather-sync/internal/search"
)

// WeatherHandler exposes the published state and the user actions that drive
// the engine and the search controller. State semantics live in the engine;
// this is presentation plumbing only.
type WeatherHandler struct {
	engine   *engine.Engine
	searches *search.Controller
	timeout  time.Duration
}

func NewWeatherHandler(eng *engine.Engine, searches *search.Controller, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		engine:   eng,
		searches: searches,
		timeout:  timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/state":
		h.GetState(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/refresh":
		h.Refresh(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/search":
		h.Search(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/cities":
		h.SaveCity(w, r)
	case r.Method == http.MethodDelete && r.URL.Path == "/cities":
		h.DeleteCity(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/cities/select":
		h.SelectCity(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// GetState returns the current published snapshot.
func (h *WeatherHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.engine.State().Get())
}

// Refresh re-runs the current-location path and returns the resulting snapshot.
func (h *WeatherHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.engine.Refresh(ctx)
	respondWithJSON(w, http.StatusOK, h.engine.State().Get())
}

// Search records a keystroke; results land in the published state once the
// debounce elapses and the lookup completes.
func (h *WeatherHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.searches.SetQuery(req.Query)
	respondWithJSON(w, http.StatusAccepted, h.engine.State().Get())
}

func (h *WeatherHandler) SaveCity(w http.ResponseWriter, r *http.Request) {
	var req SaveCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "city name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.engine.SaveCity(ctx, savedlocation.SavedLocation{
		Name:      req.Name,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}); err != nil {
		log.Error().Err(err).Str("city", req.Name).Msg("failed to save city")
		respondWithError(w, http.StatusInternalServerError, "failed to save city")
		return
	}

	respondWithJSON(w, http.StatusCreated, h.engine.State().Get())
}

func (h *WeatherHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "city name parameter 'name' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.engine.DeleteCity(ctx, name); err != nil {
		log.Error().Err(err).Str("city", name).Msg("failed to delete city")
		respondWithError(w, http.StatusInternalServerError, "failed to delete city")
		return
	}

	respondWithJSON(w, http.StatusOK, h.engine.State().Get())
}

// SelectCity fetches weather and forecast for the named city and publishes it
// as the detail selection.
func (h *WeatherHandler) SelectCity(w http.ResponseWriter, r *http.Request) {
	var req SelectCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "city name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.engine.ShowCity(ctx, req.Name)
	respondWithJSON(w, http.StatusOK, h.engine.State().Get())
}
