package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Provider resolves the device's current coordinates. At most one coordinate
// pair is returned per call; there is no streaming.
type Provider interface {
	CurrentLocation(ctx context.Context) (*Coordinates, error)
}

type geolocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// IPGeolocationProvider approximates the device position from its public IP
// using an ip-api.com style JSON endpoint.
type IPGeolocationProvider struct {
	baseURL string
	client  *http.Client
}

func NewIPGeolocationProvider(baseURL string) *IPGeolocationProvider {
	return &IPGeolocationProvider{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *IPGeolocationProvider) CurrentLocation(ctx context.Context) (*Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation returned status code: %d", resp.StatusCode)
	}

	var payload geolocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geolocation returned malformed JSON: %w", err)
	}

	if payload.Status != "" && payload.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup failed: %s", payload.Message)
	}

	return &Coordinates{Latitude: payload.Lat, Longitude: payload.Lon}, nil
}
