package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey names the field a view is ordered by. Besides the constants below
// any metric name understood by Metrics.Value is accepted.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByCreatedAt SortKey = "createdAt"
	SortByCTR       SortKey = "ctr"
	SortByIPM       SortKey = "ipm"
	SortByCPI       SortKey = "cpi"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ViewMode is a presentation hint for clients.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// SortCreatives orders creatives in place with a stable sort. Ties keep
// their input order. A metric sort is skipped when any creative lacks a
// metrics snapshot, leaving the input order untouched.
func SortCreatives(creatives []Creative, key SortKey, order SortOrder) {
	var compare func(a, b Creative) int
	switch key {
	case SortByName:
		compare = func(a, b Creative) int { return strings.Compare(a.Name, b.Name) }
	case SortByCreatedAt:
		compare = func(a, b Creative) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		if slices.ContainsFunc(creatives, func(c Creative) bool { return c.Metrics == nil }) {
			return
		}
		compare = func(a, b Creative) int {
			av, _ := a.Metrics.Value(string(key))
			bv, _ := b.Metrics.Value(string(key))
			return cmp.Compare(av, bv)
		}
	}
	if order == SortDesc {
		asc := compare
		compare = func(a, b Creative) int { return -asc(a, b) }
	}
	slices.SortStableFunc(creatives, compare)
}

// Query filters creatives and returns a sorted copy. The input is not
// modified and the result shares no memory with it.
func Query(creatives []Creative, filter CreativeFilter, key SortKey, order SortOrder) []Creative {
	out := make([]Creative, 0, len(creatives))
	for _, c := range creatives {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	SortCreatives(out, key, order)
	return out
}
