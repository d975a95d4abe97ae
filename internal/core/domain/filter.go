package domain

import (
	"slices"
	"time"
)

// Operator compares a metric against a threshold value.
type Operator string

const (
	OpGreater Operator = "gt"
	OpLess    Operator = "lt"
	OpEqual   Operator = "eq"
)

// DateRange is an inclusive creation-time window.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// PerformanceThreshold restricts the view to creatives whose metric compares
// true against Value.
type PerformanceThreshold struct {
	Metric   string   `json:"metric"`
	Operator Operator `json:"operator"`
	Value    float64  `json:"value"`
}

// CreativeFilter is a conjunction of optional predicates. A nil slice or
// pointer means the dimension is unconstrained. A non-nil empty slice is an
// explicit empty set and matches nothing.
type CreativeFilter struct {
	Format               []Format              `json:"type"`
	Hook                 []string              `json:"hook"`
	Style                []string              `json:"style"`
	Network              []string              `json:"network"`
	Status               []Status              `json:"status"`
	DateRange            *DateRange            `json:"dateRange,omitempty"`
	PerformanceThreshold *PerformanceThreshold `json:"performanceThreshold,omitempty"`
}

// IsZero reports whether no predicate is active.
func (f CreativeFilter) IsZero() bool {
	return f.Format == nil && f.Hook == nil && f.Style == nil && f.Network == nil &&
		f.Status == nil && f.DateRange == nil && f.PerformanceThreshold == nil
}

// Merge returns f with every predicate set in patch replacing its
// counterpart. Predicates absent from patch are kept.
func (f CreativeFilter) Merge(patch CreativeFilter) CreativeFilter {
	if patch.Format != nil {
		f.Format = slices.Clone(patch.Format)
	}
	if patch.Hook != nil {
		f.Hook = slices.Clone(patch.Hook)
	}
	if patch.Style != nil {
		f.Style = slices.Clone(patch.Style)
	}
	if patch.Network != nil {
		f.Network = slices.Clone(patch.Network)
	}
	if patch.Status != nil {
		f.Status = slices.Clone(patch.Status)
	}
	if patch.DateRange != nil {
		dr := *patch.DateRange
		f.DateRange = &dr
	}
	if patch.PerformanceThreshold != nil {
		pt := *patch.PerformanceThreshold
		f.PerformanceThreshold = &pt
	}
	return f
}

// Matches reports whether c satisfies every active predicate. Evaluation
// stops at the first failing predicate.
func (f CreativeFilter) Matches(c Creative) bool {
	if f.Format != nil && !slices.Contains(f.Format, c.Format) {
		return false
	}
	if f.Hook != nil && c.Tags.Hook != "" && !slices.Contains(f.Hook, c.Tags.Hook) {
		return false
	}
	if f.Style != nil && c.Tags.Style != "" && !slices.Contains(f.Style, c.Tags.Style) {
		return false
	}
	if f.Status != nil && !slices.Contains(f.Status, c.Status) {
		return false
	}
	if f.Network != nil {
		if c.Networks == nil {
			return false
		}
		if !slices.ContainsFunc(c.Networks, func(n string) bool { return slices.Contains(f.Network, n) }) {
			return false
		}
	}
	if f.DateRange != nil {
		if c.CreatedAt.Before(f.DateRange.From) || c.CreatedAt.After(f.DateRange.To) {
			return false
		}
	}
	if pt := f.PerformanceThreshold; pt != nil {
		v, ok := c.Metrics.Value(pt.Metric)
		if !ok {
			return false
		}
		switch pt.Operator {
		case OpGreater:
			return v > pt.Value
		case OpLess:
			return v < pt.Value
		case OpEqual:
			return v == pt.Value
		default:
			return false
		}
	}
	return true
}
