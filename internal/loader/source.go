package loader

import (
	"context"

	"github.com/rshade/slayerdex/internal/character"
)

// DefaultListLimit is the upper bound on listing size sent to the source.
const DefaultListLimit = 45

// ListingSource provides character summaries.
type ListingSource interface {
	ListCharacters(ctx context.Context, limit int) ([]character.Summary, error)
}

// DetailSource provides a single character by id.
type DetailSource interface {
	GetCharacter(ctx context.Context, id character.ID) (character.Detail, error)
}

// Source is a complete character data source.
type Source interface {
	ListingSource
	DetailSource
}
