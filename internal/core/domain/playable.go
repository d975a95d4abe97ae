package domain

import "time"

// PlayableEngine is the runtime a playable ad is packaged for.
type PlayableEngine string

const (
	EngineHTML5 PlayableEngine = "html5"
	EngineMRAID PlayableEngine = "mraid"
)

// Orientation is the screen orientation a playable supports.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
	OrientationBoth      Orientation = "both"
)

// PlayableConfig describes how a playable creative is packaged.
type PlayableConfig struct {
	CreativeID  string         `json:"creativeId" validate:"required"`
	Engine      PlayableEngine `json:"engine" validate:"required,oneof=html5 mraid"`
	Orientation Orientation    `json:"orientation" validate:"required,oneof=portrait landscape both"`
	Width       int            `json:"width" validate:"required,gt=0"`
	Height      int            `json:"height" validate:"required,gt=0"`
	FileSize    int64          `json:"fileSize" validate:"gte=0"` // in bytes
	MaxLoadMS   int            `json:"maxLoadMs" validate:"gte=0"`
	EntryFile   string         `json:"entryFile" validate:"required"`
	CTAURL      string         `json:"ctaUrl,omitempty" validate:"omitempty,url"`
	StoreURLs   StoreURLs      `json:"storeUrls"`
	Networks    []string       `json:"networks,omitempty"`
}

// StoreURLs are the app-store destinations a playable links to.
type StoreURLs struct {
	IOS     string `json:"ios,omitempty" validate:"omitempty,url"`
	Android string `json:"android,omitempty" validate:"omitempty,url"`
}

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is a single finding against a playable config.
type ValidationIssue struct {
	Field    string   `json:"field"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// PlayableValidation is the stored outcome of validating a playable config.
// Valid is false when any issue has error severity.
type PlayableValidation struct {
	ID         string            `json:"id"`
	CreativeID string            `json:"creativeId"`
	Valid      bool              `json:"valid"`
	Issues     []ValidationIssue `json:"issues"`
	Config     PlayableConfig    `json:"config"`
	CheckedAt  time.Time         `json:"checkedAt"`
}
