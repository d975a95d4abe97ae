package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"creative-hub/internal/adapter/memory"
	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port"
)

// JobUseCase implements port.JobUseCase on top of the in-memory job store
// and publishes lifecycle events.
type JobUseCase struct {
	store  *memory.JobStore
	events port.Publisher
	logger *slog.Logger
}

// NewJobUseCase creates a new job use case.
func NewJobUseCase(store *memory.JobStore, events port.Publisher, logger *slog.Logger) *JobUseCase {
	return &JobUseCase{store: store, events: events, logger: logger}
}

// Start registers data as a new processing job.
func (u *JobUseCase) Start(ctx context.Context, data domain.GenerationJob) (domain.GenerationJob, error) {
	id, err := u.store.AddJob(data)
	if err != nil {
		return domain.GenerationJob{}, fmt.Errorf("add job: %w", err)
	}
	job, _ := u.store.GetJob(id)
	u.logger.Info("generation job started", slog.String("job_id", id), slog.String("type", job.Type))
	u.publish(ctx, port.TopicJobCreated, job)
	return job, nil
}

// Update merges patch onto the job and publishes a completion or failure
// event when the job reaches a terminal status.
func (u *JobUseCase) Update(ctx context.Context, id string, patch domain.JobPatch) (domain.GenerationJob, error) {
	job, finished, ok := u.store.UpdateJob(id, patch)
	if !ok {
		return domain.GenerationJob{}, fmt.Errorf("job %s: %w", id, port.ErrNotFound)
	}
	if finished {
		u.logger.Info("generation job finished",
			slog.String("job_id", id),
			slog.String("status", string(job.Status)),
			slog.Duration("duration", job.EndTime.Sub(job.StartTime)))
		topic := port.TopicJobCompleted
		if job.Status == domain.JobFailed {
			topic = port.TopicJobFailed
		}
		u.publish(ctx, topic, job)
	}
	return job, nil
}

// Get returns the job with id.
func (u *JobUseCase) Get(id string) (domain.GenerationJob, error) {
	job, ok := u.store.GetJob(id)
	if !ok {
		return domain.GenerationJob{}, fmt.Errorf("job %s: %w", id, port.ErrNotFound)
	}
	return job, nil
}

// List returns all jobs, newest first.
func (u *JobUseCase) List() []domain.GenerationJob {
	return u.store.Jobs()
}

// Remove deletes the job with id; unknown ids are ignored.
func (u *JobUseCase) Remove(id string) {
	u.store.RemoveJob(id)
}

// ClearCompleted drops finished jobs.
func (u *JobUseCase) ClearCompleted() int {
	return u.store.ClearCompleted()
}

func (u *JobUseCase) publish(ctx context.Context, topic string, job domain.GenerationJob) {
	if err := u.events.Publish(ctx, topic, port.JobEvent{Job: job}); err != nil {
		u.logger.Warn("publish event failed", slog.String("topic", topic), slog.Any("error", err))
	}
}
