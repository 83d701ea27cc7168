package loader

import (
	"context"
	"slices"
	"sync"

	"github.com/rshade/slayerdex/internal/api"
	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/logging"
)

// ListingStatus is the phase of a Listing loader.
type ListingStatus int

const (
	// ListingLoading means the request is outstanding.
	ListingLoading ListingStatus = iota
	// ListingReady means the listing has settled, possibly with no items.
	ListingReady
)

func (s ListingStatus) String() string {
	switch s {
	case ListingLoading:
		return "loading"
	case ListingReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ListingState is the renderable value of a Listing loader.
type ListingState struct {
	Status ListingStatus
	Items  []character.Summary
}

// Listing loads the character listing once per mount.
type Listing struct {
	source ListingSource
	limit  int

	fetchOnce sync.Once
	fetched   ListingState

	mu        sync.Mutex
	state     ListingState
	unmounted bool
}

// NewListing mounts a listing loader. A non-positive limit uses DefaultListLimit.
func NewListing(source ListingSource, limit int) *Listing {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &Listing{
		source: source,
		limit:  limit,
		state:  ListingState{Status: ListingLoading},
	}
}

// Limit returns the collection bound sent to the source.
func (l *Listing) Limit() int {
	return l.limit
}

// Fetch performs the single request of this mount and returns the settled
// state without applying it. Later calls return the same result.
func (l *Listing) Fetch(ctx context.Context) ListingState {
	l.fetchOnce.Do(func() {
		log := logging.FromContext(ctx)

		items, err := l.source.ListCharacters(ctx, l.limit)
		if err != nil {
			log.Debug().
				Str("component", "loader").
				Str("error_kind", api.Kind(err)).
				Err(err).
				Msg("listing failed, settling empty")
			items = nil
		}
		if items == nil {
			items = []character.Summary{}
		}

		log.Debug().
			Str("component", "loader").
			Int("limit", l.limit).
			Int("count", len(items)).
			Msg("listing settled")
		l.fetched = ListingState{Status: ListingReady, Items: items}
	})
	return l.fetched
}

// Apply transitions the loader to a settled state. It reports false, leaving
// the loader untouched, when the loader is unmounted, already settled, or s is
// not a settled state.
func (l *Listing) Apply(s ListingState) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unmounted || l.state.Status != ListingLoading || s.Status != ListingReady {
		return false
	}
	l.state = ListingState{Status: ListingReady, Items: slices.Clone(s.Items)}
	if l.state.Items == nil {
		l.state.Items = []character.Summary{}
	}
	return true
}

// Load fetches and applies in one step.
func (l *Listing) Load(ctx context.Context) ListingState {
	l.Apply(l.Fetch(ctx))
	return l.State()
}

// State returns a copy of the current state.
func (l *Listing) State() ListingState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ListingState{Status: l.state.Status, Items: slices.Clone(l.state.Items)}
}

// Unmount detaches the loader; later Apply calls are ignored.
func (l *Listing) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unmounted = true
}
