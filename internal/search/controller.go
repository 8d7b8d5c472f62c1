package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"weathersync/weather-sync/internal/domain"
	"weathersync/weather-sync/internal/repository"
	"weathersync/weather-sync/internal/state"
)

// Selector is the part of the aggregation engine the controller feeds chosen
// results into.
type Selector interface {
	ShowCity(ctx context.Context, name string)
}

// Controller debounces free-text input and runs at most one search at a time.
//
// Each keystroke stores the text immediately, cancels the pending debounce
// timer and cancels any in-flight search. A cancelled search never publishes
// its result: last keystroke wins, not last response.
type Controller struct {
	repo      repository.CityRepository
	states    *state.Container
	selector  Selector
	delay     time.Duration
	minLength int

	mu       sync.Mutex
	seq      uint64
	timer    *time.Timer
	inflight context.CancelFunc
}

func NewController(repo repository.CityRepository, states *state.Container, selector Selector, delay time.Duration, minLength int) *Controller {
	return &Controller{
		repo:      repo,
		states:    states,
		selector:  selector,
		delay:     delay,
		minLength: minLength,
	}
}

// SetQuery records a keystroke. Queries shorter than the minimum length clear
// the results without issuing a network call; longer queries fire a search
// after the debounce delay elapses with no further keystroke.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.cancelPendingLocked()

	c.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.SearchQuery = text
		return s
	})

	if utf8.RuneCountInString(strings.TrimSpace(text)) < c.minLength {
		c.states.Update(func(s state.AggregatedState) state.AggregatedState {
			s.SearchResults = nil
			s.Searching = false
			return s
		})
		c.mu.Unlock()
		return
	}

	seq := c.seq
	c.timer = time.AfterFunc(c.delay, func() {
		c.runSearch(seq, text)
	})
	c.mu.Unlock()
}

// SelectResult clears the search session and routes the chosen city into the
// engine's detail-selection slot.
func (c *Controller) SelectResult(ctx context.Context, result domain.SearchResult) {
	c.mu.Lock()
	c.cancelPendingLocked()
	c.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.SearchQuery = ""
		s.SearchResults = nil
		s.Searching = false
		return s
	})
	c.mu.Unlock()

	c.selector.ShowCity(ctx, result.Name)
}

// Close cancels any pending timer and in-flight search.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelPendingLocked()
	c.mu.Unlock()
}

func (c *Controller) runSearch(seq uint64, text string) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	// A keystroke may have arrived between the timer firing and this lock
	// being acquired; the sequence number catches that window.
	if c.seq != seq {
		c.mu.Unlock()
		cancel()
		return
	}
	c.inflight = cancel
	c.states.Update(func(s state.AggregatedState) state.AggregatedState {
		s.Searching = true
		return s
	})
	c.mu.Unlock()

	results := c.repo.Search(ctx, text)

	// The cancellation check and the state write happen under the same lock
	// that SetQuery cancels under, so a superseded search can never publish.
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil || c.seq != seq {
		return
	}

	c.states.Update(func(s state.AggregatedState) state.AggregatedState {
		if results != nil {
			s.SearchResults = results
		} else {
			s.SearchResults = []domain.SearchResult{}
		}
		s.Searching = false
		return s
	})
	c.inflight = nil
}

func (c *Controller) cancelPendingLocked() {
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
}
