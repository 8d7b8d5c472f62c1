package state

import (
	"sync"

	"weathersync/weather-sync/internal/domain"
)

// Phase tracks where the engine is in its loading lifecycle. InitialLoading
// and Refreshing are distinct so a consumer can tell first-load from
// pull-to-refresh.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseInitialLoading Phase = "initial_loading"
	PhaseRefreshing     Phase = "refreshing"
	PhaseReady          Phase = "ready"
	PhaseError          Phase = "error"
)

type ErrorCode string

const (
	ErrNone                   ErrorCode = ""
	ErrLocationUnavailable    ErrorCode = "LOCATION_UNAVAILABLE"
	ErrNetworkOrAPIFailure    ErrorCode = "NETWORK_OR_API_FAILURE"
	ErrPersistenceReadFailure ErrorCode = "PERSISTENCE_READ_FAILURE"
)

// AggregatedState is the single published snapshot. Fields are never mutated
// in place: every change produces a whole new value, so concurrent readers
// never observe a torn state.
type AggregatedState struct {
	Phase     Phase     `json:"phase"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`

	Selected *domain.WeatherObservation `json:"selected,omitempty"`
	Forecast *domain.ForecastSnapshot   `json:"forecast,omitempty"`
	Cities   []domain.WeatherObservation `json:"cities"`

	SearchQuery   string                `json:"search_query"`
	SearchResults []domain.SearchResult `json:"search_results,omitempty"`
	Searching     bool                  `json:"searching"`
}

// Container serializes all writes to the published snapshot. Updates are
// totally ordered; a subscriber never observes an older snapshot after a
// newer one.
type Container struct {
	mu          sync.Mutex
	current     AggregatedState
	subscribers map[chan AggregatedState]struct{}
}

func NewContainer() *Container {
	return &Container{
		current:     AggregatedState{Phase: PhaseIdle},
		subscribers: make(map[chan AggregatedState]struct{}),
	}
}

// Get returns the current snapshot.
func (c *Container) Get() AggregatedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Update applies fn to a copy of the current snapshot and publishes the
// result atomically.
func (c *Container) Update(fn func(AggregatedState) AggregatedState) AggregatedState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = fn(c.current)

	for ch := range c.subscribers {
		// Coalesce for slow subscribers: drop the stale buffered snapshot
		// and replace it with the newest.
		select {
		case ch <- c.current:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- c.current:
			default:
			}
		}
	}

	return c.current
}

// Subscribe returns a channel of published snapshots plus an unsubscribe
// function. The channel is buffered and coalescing; it always eventually
// carries the latest snapshot.
func (c *Container) Subscribe() (<-chan AggregatedState, func()) {
	ch := make(chan AggregatedState, 1)

	c.mu.Lock()
	c.subscribers[ch] = struct{}{}
	ch <- c.current
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.subscribers, ch)
		c.mu.Unlock()
	}

	return ch, cancel
}
