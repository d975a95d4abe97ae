package domain

import (
	"slices"
	"time"
)

// Format is the kind of ad a creative renders as.
type Format string

const (
	FormatVideo    Format = "video"
	FormatBanner   Format = "banner"
	FormatPlayable Format = "playable"
)

// Status is the lifecycle state of a creative.
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusTesting  Status = "testing"
	StatusArchived Status = "archived"
)

// BrandVisibility describes how prominently the brand appears.
type BrandVisibility string

const (
	BrandLow    BrandVisibility = "low"
	BrandMedium BrandVisibility = "medium"
	BrandHigh   BrandVisibility = "high"
)

// URLs bundles the asset locations of a creative.
type URLs struct {
	Preview   string `json:"preview,omitempty"`
	Source    string `json:"source,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Original  string `json:"original,omitempty"`
}

// Tags is the descriptive tag bag used for filtering and pattern analysis.
// An empty Hook or Style means the creative carries no such tag.
type Tags struct {
	Hook            string          `json:"hook,omitempty"`
	Style           string          `json:"style,omitempty"`
	CTA             string          `json:"cta,omitempty"`
	Color           string          `json:"color,omitempty"`
	Pacing          string          `json:"pacing,omitempty"`
	Language        string          `json:"language,omitempty"`
	Duration        int             `json:"duration,omitempty"` // in seconds
	HasVoiceover    bool            `json:"hasVoiceover"`
	HasTextOverlay  bool            `json:"hasTextOverlay"`
	BrandVisibility BrandVisibility `json:"brandVisibility,omitempty"`
}

// Retention holds optional day-N retention rates in percent.
type Retention struct {
	D1  *float64 `json:"d1,omitempty"`
	D7  *float64 `json:"d7,omitempty"`
	D30 *float64 `json:"d30,omitempty"`
}

// Metrics is a point-in-time performance snapshot. CTR, IPM and CPI are
// derived by the reporting pipeline and stored as-is.
type Metrics struct {
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	Installs    int64      `json:"installs"`
	CTR         float64    `json:"ctr"`
	IPM         float64    `json:"ipm"`
	CPI         float64    `json:"cpi"`
	Spend       float64    `json:"spend"`
	Retention   *Retention `json:"retention,omitempty"`
}

// Value looks up a metric by its API name. The second return value is false
// when the metric is unknown or not recorded on this snapshot.
func (m *Metrics) Value(name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch name {
	case "impressions":
		return float64(m.Impressions), true
	case "clicks":
		return float64(m.Clicks), true
	case "installs":
		return float64(m.Installs), true
	case "ctr":
		return m.CTR, true
	case "ipm":
		return m.IPM, true
	case "cpi":
		return m.CPI, true
	case "spend":
		return m.Spend, true
	}
	if m.Retention == nil {
		return 0, false
	}
	var v *float64
	switch name {
	case "retentionD1":
		v = m.Retention.D1
	case "retentionD7":
		v = m.Retention.D7
	case "retentionD30":
		v = m.Retention.D30
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Creative represents a single advertising asset. ID never changes once
// assigned. Version is managed by the service layer.
type Creative struct {
	ID        string    `json:"id"`
	Format    Format    `json:"type"`
	Name      string    `json:"name"`
	URLs      URLs      `json:"urls"`
	Tags      Tags      `json:"tags"`
	Version   int       `json:"version"`
	Networks  []string  `json:"network,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Metrics   *Metrics  `json:"metrics,omitempty"`

	ParentID      string `json:"parentId,omitempty"`
	GeneratedFrom string `json:"generatedFrom,omitempty"`
	IsVariation   bool   `json:"isVariation,omitempty"`
}

// Clone returns a deep copy so callers cannot alias store-owned slices and
// pointers.
func (c Creative) Clone() Creative {
	out := c
	out.Networks = slices.Clone(c.Networks)
	if c.Metrics != nil {
		m := *c.Metrics
		if c.Metrics.Retention != nil {
			r := *c.Metrics.Retention
			m.Retention = &r
		}
		out.Metrics = &m
	}
	return out
}

// CreativePatch carries a partial update. Nil fields are left untouched.
// Tags and Metrics replace the existing value wholesale when set.
type CreativePatch struct {
	Format        *Format    `json:"type,omitempty"`
	Name          *string    `json:"name,omitempty"`
	URLs          *URLs      `json:"urls,omitempty"`
	Tags          *Tags      `json:"tags,omitempty"`
	Version       *int       `json:"version,omitempty"`
	Networks      []string   `json:"network,omitempty"`
	Status        *Status    `json:"status,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	Metrics       *Metrics   `json:"metrics,omitempty"`
	ParentID      *string    `json:"parentId,omitempty"`
	GeneratedFrom *string    `json:"generatedFrom,omitempty"`
	IsVariation   *bool      `json:"isVariation,omitempty"`
}

// Apply merges p onto c and returns the result. Incoming values win; nil
// fields keep the existing value.
func (p CreativePatch) Apply(c Creative) Creative {
	if p.Format != nil {
		c.Format = *p.Format
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.URLs != nil {
		c.URLs = *p.URLs
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Version != nil {
		c.Version = *p.Version
	}
	if p.Networks != nil {
		c.Networks = slices.Clone(p.Networks)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.UpdatedAt != nil {
		c.UpdatedAt = *p.UpdatedAt
	}
	if p.Metrics != nil {
		m := *p.Metrics
		c.Metrics = &m
	}
	if p.ParentID != nil {
		c.ParentID = *p.ParentID
	}
	if p.GeneratedFrom != nil {
		c.GeneratedFrom = *p.GeneratedFrom
	}
	if p.IsVariation != nil {
		c.IsVariation = *p.IsVariation
	}
	return c
}
