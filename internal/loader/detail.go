package loader

import (
	"context"
	"sync"

	"github.com/rshade/slayerdex/internal/api"
	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/logging"
)

// DetailStatus is the phase of a Detail loader.
type DetailStatus int

const (
	// DetailLoading means the request is outstanding.
	DetailLoading DetailStatus = iota
	// DetailFound means the character was returned.
	DetailFound
	// DetailNotFound covers empty results and every failure.
	DetailNotFound
)

func (s DetailStatus) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailFound:
		return "found"
	case DetailNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// DetailState is the renderable value of a Detail loader.
type DetailState struct {
	Status    DetailStatus
	Character character.Detail
}

// Settled reports whether s is a terminal state.
func (s DetailState) Settled() bool {
	return s.Status == DetailFound || s.Status == DetailNotFound
}

// Detail loads one character once per mount.
type Detail struct {
	source DetailSource
	id     character.ID

	fetchOnce sync.Once
	fetched   DetailState

	mu        sync.Mutex
	state     DetailState
	unmounted bool
}

// NewDetail mounts a detail loader for id.
func NewDetail(source DetailSource, id character.ID) *Detail {
	return &Detail{
		source: source,
		id:     id,
		state:  DetailState{Status: DetailLoading},
	}
}

// ID returns the id this loader was mounted with.
func (d *Detail) ID() character.ID {
	return d.id
}

// Fetch performs the single request of this mount and returns the settled
// state without applying it. Later calls return the same result.
func (d *Detail) Fetch(ctx context.Context) DetailState {
	d.fetchOnce.Do(func() {
		log := logging.FromContext(ctx)

		detail, err := d.source.GetCharacter(ctx, d.id)
		if err != nil {
			log.Debug().
				Str("component", "loader").
				Str("id", d.id.String()).
				Str("error_kind", api.Kind(err)).
				Err(err).
				Msg("detail not found")
			d.fetched = DetailState{Status: DetailNotFound}
			return
		}

		log.Debug().
			Str("component", "loader").
			Str("id", d.id.String()).
			Str("theme", string(detail.Theme())).
			Msg("detail found")
		d.fetched = DetailState{Status: DetailFound, Character: detail}
	})
	return d.fetched
}

// Apply transitions the loader to a settled state. It reports false, leaving
// the loader untouched, when the loader is unmounted, already settled, or s is
// not a settled state.
func (d *Detail) Apply(s DetailState) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unmounted || d.state.Settled() || !s.Settled() {
		return false
	}
	d.state = s
	return true
}

// Load fetches and applies in one step.
func (d *Detail) Load(ctx context.Context) DetailState {
	d.Apply(d.Fetch(ctx))
	return d.State()
}

// State returns the current state.
func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Unmount detaches the loader; later Apply calls are ignored.
func (d *Detail) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unmounted = true
}
