package port

import "creative-hub/internal/core/domain"

// Catalog serves the static brief templates and performance patterns.
type Catalog interface {
	Briefs() []domain.BriefTemplate
	Brief(id string) (domain.BriefTemplate, bool)
	Patterns() []domain.PerformancePattern
}
