package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// Client is the gateway to the three weather API endpoints: current conditions,
// multi-day forecast and free-text location search.
//
// Every fetch collapses transport errors, non-2xx statuses and empty bodies
// into an absent result. Callers observe "no data", never a typed error; the
// failure reason is only kept as a diagnostic log line.
type Client interface {
	FetchCurrent(ctx context.Context, query string) *CurrentResponse
	FetchForecast(ctx context.Context, query string, days int) *ForecastResponse
	Search(ctx context.Context, text string) []SearchLocationDTO
}

type client struct {
	apiKey  string
	baseURL string
	lang    string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewClient(apiKey, baseURL string) Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &client{
		apiKey:  apiKey,
		baseURL: baseURL,
		lang:    "pt",
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		circuit: cb,
	}
}

// FetchCurrent returns the current conditions for a query, which may be either
// a "lat,lon" pair or a free-text place name. Returns nil on any failure.
func (c *client) FetchCurrent(ctx context.Context, query string) *CurrentResponse {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("lang", c.lang)

	var resp CurrentResponse
	if err := c.getJSON(ctx, "current.json", values, &resp); err != nil {
		log.Error().Err(err).Str("query", query).Msg("current weather fetch failed")
		return nil
	}
	if resp.Location.Name == "" {
		log.Error().Str("query", query).Msg("current weather response had empty body")
		return nil
	}
	return &resp
}

// FetchForecast returns the forecast for the next days. Returns nil on any failure.
func (c *client) FetchForecast(ctx context.Context, query string, days int) *ForecastResponse {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("days", fmt.Sprintf("%d", days))
	values.Set("lang", c.lang)

	var resp ForecastResponse
	if err := c.getJSON(ctx, "forecast.json", values, &resp); err != nil {
		log.Error().Err(err).Str("query", query).Msg("forecast fetch failed")
		return nil
	}
	if len(resp.Forecast.ForecastDay) == 0 {
		log.Error().Str("query", query).Msg("forecast response had no days")
		return nil
	}
	return &resp
}

// Search returns location candidates for free text. Returns nil on any failure.
func (c *client) Search(ctx context.Context, text string) []SearchLocationDTO {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", text)

	var results []SearchLocationDTO
	if err := c.getJSON(ctx, "search.json", values, &results); err != nil {
		log.Error().Err(err).Str("text", text).Msg("location search failed")
		return nil
	}
	return results
}

func (c *client) getJSON(ctx context.Context, endpoint string, values url.Values, out interface{}) error {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, values.Encode())

	_, err := c.circuit.Execute(func() (interface{}, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if reqErr != nil {
			return nil, reqErr
		}

		resp, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("request failed: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
			return nil, fmt.Errorf("malformed JSON: %w", decErr)
		}
		return nil, nil
	})

	return err
}
