package port

import (
	"context"

	"creative-hub/internal/core/domain"
)

// CreativeUseCase is the primary port for creative management and the
// dashboard view state.
type CreativeUseCase interface {
	// Load fills the store from the repository, or from mock data when no
	// repository is configured.
	Load(ctx context.Context) error

	// View returns the filtered and sorted creatives.
	View() []domain.Creative
	// Get returns a creative by id or ErrNotFound.
	Get(id string) (domain.Creative, error)
	// Create assigns id, version and timestamps where missing and inserts
	// the creative at the front of the collection.
	Create(ctx context.Context, c domain.Creative) (domain.Creative, error)
	// ReplaceAll swaps the whole collection.
	ReplaceAll(ctx context.Context, all []domain.Creative) error
	// Update merges patch onto the creative, bumps its version and stamps
	// UpdatedAt. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, id string, patch domain.CreativePatch) (domain.Creative, error)
	// Delete removes a creative. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
	// Duplicate creates a variation derived from the creative with id.
	Duplicate(ctx context.Context, id string) (domain.Creative, error)

	// State returns the current filter, sort, view mode and selection.
	State() ViewState
	SetFilter(patch domain.CreativeFilter) ViewState
	ClearFilter() ViewState
	SetSorting(key domain.SortKey, order domain.SortOrder) ViewState
	SetViewMode(mode domain.ViewMode) ViewState

	Selected() []string
	SetSelected(ids []string) []string
	ToggleSelected(id string) []string
	ClearSelection() []string
}

// ViewState is a DTO describing how the creative view is computed.
type ViewState struct {
	Filter    domain.CreativeFilter `json:"filters"`
	SortBy    domain.SortKey        `json:"sortBy"`
	SortOrder domain.SortOrder      `json:"sortOrder"`
	ViewMode  domain.ViewMode       `json:"viewMode"`
	Selected  []string              `json:"selectedCreatives"`
}
