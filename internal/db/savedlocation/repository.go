package savedlocation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Emission is one element of the observation stream: the full saved-location
// list after a mutation, or a read error when listing failed.
type Emission struct {
	Records []SavedLocation
	Err     error
}

type Repository interface {
	All(ctx context.Context) ([]SavedLocation, error)
	Save(ctx context.Context, loc SavedLocation) error
	Delete(ctx context.Context, name string) error
	Observe(ctx context.Context) <-chan Emission
}

type SQLRepository struct {
	db *gorm.DB

	mu          sync.Mutex
	subscribers map[chan Emission]struct{}
}

func NewRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{
		db:          db,
		subscribers: make(map[chan Emission]struct{}),
	}
}

func (r *SQLRepository) All(ctx context.Context) ([]SavedLocation, error) {
	var records []SavedLocation
	err := r.db.WithContext(ctx).Order("added_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Save inserts or replaces a location by name. The write completes before
// observers are notified, so the next emission always reflects it.
func (r *SQLRepository) Save(ctx context.Context, loc SavedLocation) error {
	if loc.AddedAt.IsZero() {
		loc.AddedAt = time.Now()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&loc).Error
	if err != nil {
		return err
	}

	r.notify(ctx)
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Where("name = ?", name).Delete(&SavedLocation{}).Error
	if err != nil {
		return err
	}

	r.notify(ctx)
	return nil
}

// Observe returns a stream that emits the current saved-location list
// immediately and again after every successful mutation. The channel is closed
// when ctx is cancelled.
func (r *SQLRepository) Observe(ctx context.Context) <-chan Emission {
	ch := make(chan Emission, 1)

	r.mu.Lock()
	r.subscribers[ch] = struct{}{}
	r.mu.Unlock()

	// Initial emission so new subscribers see the current list without
	// waiting for a mutation. The send must not block: a mutation landing
	// while the list read runs may have filled the buffer already, and that
	// emission is at least as fresh as this one.
	select {
	case ch <- r.snapshot(ctx):
	default:
	}

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.subscribers, ch)
		r.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (r *SQLRepository) snapshot(ctx context.Context) Emission {
	records, err := r.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list saved locations")
		return Emission{Err: err}
	}
	return Emission{Records: records}
}

func (r *SQLRepository) notify(ctx context.Context) {
	emission := r.snapshot(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for ch := range r.subscribers {
		// Coalesce: a slow subscriber keeps only the newest emission.
		select {
		case ch <- emission:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- emission:
			default:
			}
		}
	}
}
