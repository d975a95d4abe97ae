package domain

// BriefTemplate is a reusable starting point for generating creatives.
type BriefTemplate struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Format         Format   `json:"type" yaml:"type"`
	Objective      string   `json:"objective" yaml:"objective"`
	TargetAudience string   `json:"targetAudience" yaml:"target_audience"`
	KeyMessage     string   `json:"keyMessage" yaml:"key_message"`
	Hooks          []string `json:"hooks,omitempty" yaml:"hooks"`
	Styles         []string `json:"styles,omitempty" yaml:"styles"`
	CTAs           []string `json:"ctas,omitempty" yaml:"ctas"`
	Durations      []int    `json:"durations,omitempty" yaml:"durations"`
	Networks       []string `json:"networks,omitempty" yaml:"networks"`
}

// PatternCondition lists the tag values a performance pattern applies to.
// Empty fields match any value.
type PatternCondition struct {
	Hook   string `json:"hook,omitempty" yaml:"hook"`
	Style  string `json:"style,omitempty" yaml:"style"`
	Pacing string `json:"pacing,omitempty" yaml:"pacing"`
}

// PerformancePattern records an observed correlation between creative tags
// and metric lift.
type PerformancePattern struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Condition   PatternCondition   `json:"condition" yaml:"condition"`
	Lift        map[string]float64 `json:"lift" yaml:"lift"` // metric name -> relative lift
	SampleSize  int                `json:"sampleSize" yaml:"sample_size"`
	Confidence  float64            `json:"confidence" yaml:"confidence"`
}

// Applies reports whether the pattern's condition holds for tags.
func (p PerformancePattern) Applies(tags Tags) bool {
	c := p.Condition
	return (c.Hook == "" || c.Hook == tags.Hook) &&
		(c.Style == "" || c.Style == tags.Style) &&
		(c.Pacing == "" || c.Pacing == tags.Pacing)
}
