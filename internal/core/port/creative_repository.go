package port

import (
	"context"

	"creative-hub/internal/core/domain"
)

// CreativeRepository is the optional durable backing for the creative store.
// It is an outbound port; implementations must be safe for concurrent use.
type CreativeRepository interface {
	// ListCreatives returns every stored creative, newest first.
	ListCreatives(ctx context.Context) ([]domain.Creative, error)
	// UpsertCreative inserts the creative or overwrites the row with the
	// same id.
	UpsertCreative(ctx context.Context, c domain.Creative) error
	// ReplaceCreatives atomically swaps the full stored collection.
	ReplaceCreatives(ctx context.Context, all []domain.Creative) error
	// DeleteCreative removes a creative. Unknown ids are not an error.
	DeleteCreative(ctx context.Context, id string) error
}
