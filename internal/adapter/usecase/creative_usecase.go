package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"creative-hub/internal/adapter/memory"
	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port"
)

// CreativeUseCase implements port.CreativeUseCase. It owns the creative
// store, assigns ids/versions/timestamps, optionally writes through to a
// repository and announces changes on the publisher.
type CreativeUseCase struct {
	store  *memory.CreativeStore
	repo   port.CreativeRepository // nil when running without a database
	events port.Publisher
	logger *slog.Logger

	// mu serialises read-modify-write sequences that span the repository
	// and the store.
	mu       sync.Mutex
	mockData []domain.Creative
	now      func() time.Time
	newID    func() string
}

// NewCreativeUseCase creates a use case over store. repo may be nil, in
// which case the collection lives only in memory.
func NewCreativeUseCase(store *memory.CreativeStore, repo port.CreativeRepository, events port.Publisher, logger *slog.Logger) *CreativeUseCase {
	return &CreativeUseCase{
		store:  store,
		repo:   repo,
		events: events,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// WithMockData sets the creatives Load uses when no repository is
// configured.
func (u *CreativeUseCase) WithMockData(creatives []domain.Creative) *CreativeUseCase {
	u.mockData = creatives
	return u
}

// Load fills the store from the repository, or from mock data.
func (u *CreativeUseCase) Load(ctx context.Context) error {
	if u.repo == nil {
		u.store.Replace(u.mockData)
		u.logger.Info("creatives loaded from mock data", slog.Int("count", len(u.mockData)))
		return nil
	}
	all, err := u.repo.ListCreatives(ctx)
	if err != nil {
		return fmt.Errorf("load creatives: %w", err)
	}
	u.store.Replace(all)
	u.logger.Info("creatives loaded from database", slog.Int("count", len(all)))
	return nil
}

// View returns the filtered, sorted creatives.
func (u *CreativeUseCase) View() []domain.Creative {
	return u.store.Query()
}

// Get returns the creative with id.
func (u *CreativeUseCase) Get(id string) (domain.Creative, error) {
	c, ok := u.store.Get(id)
	if !ok {
		return domain.Creative{}, fmt.Errorf("creative %s: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// Create fills in id, version, status and timestamps when missing and
// inserts c at the front of the collection.
func (u *CreativeUseCase) Create(ctx context.Context, c domain.Creative) (domain.Creative, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if c.ID == "" {
		c.ID = u.newID()
	}
	if c.Version < 1 {
		c.Version = 1
	}
	if c.Status == "" {
		c.Status = domain.StatusTesting
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	if u.repo != nil {
		if err := u.repo.UpsertCreative(ctx, c); err != nil {
			return domain.Creative{}, fmt.Errorf("persist creative %s: %w", c.ID, err)
		}
	}
	u.store.Insert(c)
	u.publish(ctx, port.TopicCreativeCreated, port.CreativeEvent{Creative: c})
	return c, nil
}

// ReplaceAll swaps the whole collection.
func (u *CreativeUseCase) ReplaceAll(ctx context.Context, all []domain.Creative) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.repo != nil {
		if err := u.repo.ReplaceCreatives(ctx, all); err != nil {
			return fmt.Errorf("persist creatives: %w", err)
		}
	}
	u.store.Replace(all)
	return nil
}

// Update merges patch onto the creative with id. The version is bumped by
// one unless the patch carries a higher version, and UpdatedAt is stamped.
func (u *CreativeUseCase) Update(ctx context.Context, id string, patch domain.CreativePatch) (domain.Creative, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	current, ok := u.store.Get(id)
	if !ok {
		return domain.Creative{}, fmt.Errorf("creative %s: %w", id, port.ErrNotFound)
	}
	version := current.Version + 1
	if patch.Version != nil && *patch.Version > version {
		version = *patch.Version
	}
	now := u.now()
	patch.Version = &version
	patch.UpdatedAt = &now

	next := patch.Apply(current)
	if u.repo != nil {
		if err := u.repo.UpsertCreative(ctx, next); err != nil {
			return domain.Creative{}, fmt.Errorf("persist creative %s: %w", id, err)
		}
	}
	updated, _ := u.store.Update(id, patch)
	u.publish(ctx, port.TopicCreativeUpdated, port.CreativeEvent{Creative: updated})
	return updated, nil
}

// Delete removes the creative with id. Unknown ids are a no-op.
func (u *CreativeUseCase) Delete(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.repo != nil {
		if err := u.repo.DeleteCreative(ctx, id); err != nil {
			return fmt.Errorf("delete creative %s: %w", id, err)
		}
	}
	if u.store.Remove(id) {
		u.publish(ctx, port.TopicCreativeDeleted, port.CreativeDeleted{CreativeID: id})
	}
	return nil
}

// Duplicate creates a testing variation of the creative with id. Metrics
// are not carried over.
func (u *CreativeUseCase) Duplicate(ctx context.Context, id string) (domain.Creative, error) {
	src, ok := u.store.Get(id)
	if !ok {
		return domain.Creative{}, fmt.Errorf("creative %s: %w", id, port.ErrNotFound)
	}
	v := src.Clone()
	v.ID = ""
	v.Name = src.Name + " (variation)"
	v.ParentID = src.ID
	v.IsVariation = true
	v.Version = 1
	v.Status = domain.StatusTesting
	v.Metrics = nil
	v.CreatedAt = time.Time{}
	v.UpdatedAt = time.Time{}
	return u.Create(ctx, v)
}

// State returns the view state.
func (u *CreativeUseCase) State() port.ViewState {
	key, order := u.store.Sorting()
	return port.ViewState{
		Filter:    u.store.Filter(),
		SortBy:    key,
		SortOrder: order,
		ViewMode:  u.store.ViewMode(),
		Selected:  u.store.Selected(),
	}
}

// SetFilter merges patch into the active filter. Fields left nil keep
// their current value.
func (u *CreativeUseCase) SetFilter(patch domain.CreativeFilter) port.ViewState {
	u.store.SetFilter(patch)
	return u.State()
}

// ClearFilter resets every filter field.
func (u *CreativeUseCase) ClearFilter() port.ViewState {
	u.store.ClearFilter()
	return u.State()
}

// SetSorting sets the sort key and direction used by View.
func (u *CreativeUseCase) SetSorting(key domain.SortKey, order domain.SortOrder) port.ViewState {
	u.store.SetSorting(key, order)
	return u.State()
}

// SetViewMode records the grid/list preference.
func (u *CreativeUseCase) SetViewMode(mode domain.ViewMode) port.ViewState {
	u.store.SetViewMode(mode)
	return u.State()
}

// Selected returns the selected creative ids in ascending order.
func (u *CreativeUseCase) Selected() []string {
	return u.store.Selected()
}

// SetSelected replaces the selection with ids.
func (u *CreativeUseCase) SetSelected(ids []string) []string {
	u.store.SetSelected(ids)
	return u.store.Selected()
}

// ToggleSelected adds id to the selection, or removes it if already
// selected, and returns the new selection.
func (u *CreativeUseCase) ToggleSelected(id string) []string {
	u.store.ToggleSelected(id)
	return u.store.Selected()
}

// ClearSelection empties the selection.
func (u *CreativeUseCase) ClearSelection() []string {
	u.store.ClearSelection()
	return u.store.Selected()
}

func (u *CreativeUseCase) publish(ctx context.Context, topic string, event any) {
	if err := u.events.Publish(ctx, topic, event); err != nil {
		u.logger.Warn("publish event failed", slog.String("topic", topic), slog.Any("error", err))
	}
}
