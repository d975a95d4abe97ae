package port

import (
	"context"

	"creative-hub/internal/core/domain"
)

// JobUseCase manages generation jobs and announces lifecycle changes.
type JobUseCase interface {
	// Start registers a new job in processing state and returns it.
	Start(ctx context.Context, data domain.GenerationJob) (domain.GenerationJob, error)
	// Update merges patch onto the job. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, id string, patch domain.JobPatch) (domain.GenerationJob, error)
	// Get returns a job by id or ErrNotFound.
	Get(id string) (domain.GenerationJob, error)
	// List returns all jobs, newest first.
	List() []domain.GenerationJob
	// Remove deletes a job. Unknown ids are a no-op.
	Remove(id string)
	// ClearCompleted drops every job that is no longer processing and
	// returns how many were removed.
	ClearCompleted() int
}
