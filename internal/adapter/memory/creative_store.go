package memory

import (
	"slices"
	"sync"

	"creative-hub/internal/core/domain"
)

// CreativeStore holds the creative collection together with the view state
// (filter, sort, selection, view mode) used to derive the dashboard view.
// All methods are safe for concurrent use; each runs to completion under
// the store lock, so readers never see a partial mutation.
type CreativeStore struct {
	mu        sync.RWMutex
	creatives []domain.Creative
	selected  map[string]struct{}
	filter    domain.CreativeFilter
	sortBy    domain.SortKey
	sortOrder domain.SortOrder
	viewMode  domain.ViewMode
}

// NewCreativeStore returns an empty store sorted by creation time, newest
// first, in grid mode.
func NewCreativeStore() *CreativeStore {
	return &CreativeStore{
		selected:  make(map[string]struct{}),
		sortBy:    domain.SortByCreatedAt,
		sortOrder: domain.SortDesc,
		viewMode:  domain.ViewGrid,
	}
}

// Replace swaps the whole collection. The input is trusted and copied.
func (s *CreativeStore) Replace(all []domain.Creative) {
	cp := make([]domain.Creative, len(all))
	for i, c := range all {
		cp[i] = c.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatives = cp
}

// Insert prepends c. Duplicate ids are not checked.
func (s *CreativeStore) Insert(c domain.Creative) {
	c = c.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creatives = slices.Insert(s.creatives, 0, c)
}

// Update merges patch onto the creative with id and reports whether it was
// found. Version is not touched unless the patch sets it.
func (s *CreativeStore) Update(id string, patch domain.CreativePatch) (domain.Creative, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.Creative{}, false
	}
	s.creatives[i] = patch.Apply(s.creatives[i])
	return s.creatives[i].Clone(), true
}

// Remove deletes the creative with id and drops it from the selection.
// Unknown ids are ignored.
func (s *CreativeStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selected, id)
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.creatives = slices.Delete(s.creatives, i, i+1)
	return true
}

// Get returns the creative with id.
func (s *CreativeStore) Get(id string) (domain.Creative, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.Creative{}, false
	}
	return s.creatives[i].Clone(), true
}

// All returns the unfiltered collection in stored order.
func (s *CreativeStore) All() []domain.Creative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Creative, len(s.creatives))
	for i, c := range s.creatives {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of stored creatives.
func (s *CreativeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.creatives)
}

// SetSelected replaces the selection. Ids are not checked against the
// collection.
func (s *CreativeStore) SetSelected(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}

// ToggleSelected flips membership of id in the selection.
func (s *CreativeStore) ToggleSelected(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// ClearSelection empties the selection.
func (s *CreativeStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.selected)
}

// Selected returns the selected ids in lexical order.
func (s *CreativeStore) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// SetFilter merges patch into the current filter, one predicate at a time.
func (s *CreativeStore) SetFilter(patch domain.CreativeFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.Merge(patch)
}

// ClearFilter removes every predicate.
func (s *CreativeStore) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = domain.CreativeFilter{}
}

// Filter returns a copy of the current filter.
func (s *CreativeStore) Filter() domain.CreativeFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CreativeFilter{}.Merge(s.filter)
}

// SetSorting replaces the sort key and direction without validation.
func (s *CreativeStore) SetSorting(key domain.SortKey, order domain.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = key
	s.sortOrder = order
}

// Sorting returns the current sort key and direction.
func (s *CreativeStore) Sorting() (domain.SortKey, domain.SortOrder) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy, s.sortOrder
}

// SetViewMode replaces the presentation mode.
func (s *CreativeStore) SetViewMode(mode domain.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// ViewMode returns the presentation mode.
func (s *CreativeStore) ViewMode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// Query computes the filtered, sorted view from the current state. It has
// no side effects; two calls without an intervening mutation return equal
// results.
func (s *CreativeStore) Query() []domain.Creative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Query(s.creatives, s.filter, s.sortBy, s.sortOrder)
}

func (s *CreativeStore) indexLocked(id string) int {
	return slices.IndexFunc(s.creatives, func(c domain.Creative) bool { return c.ID == id })
}
