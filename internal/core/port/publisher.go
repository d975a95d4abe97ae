package port

import (
	"context"

	"creative-hub/internal/core/domain"
)

// Event subjects.
const (
	TopicCreativeCreated = "creatives.created"
	TopicCreativeUpdated = "creatives.updated"
	TopicCreativeDeleted = "creatives.deleted"
	TopicJobCreated      = "jobs.created"
	TopicJobCompleted    = "jobs.completed"
	TopicJobFailed       = "jobs.failed"
)

// Publisher emits domain events. Publishing is best effort; callers log
// failures instead of failing the operation.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

type CreativeEvent struct {
	Creative domain.Creative `json:"creative"`
}

type CreativeDeleted struct {
	CreativeID string `json:"creativeId"`
}

type JobEvent struct {
	Job domain.GenerationJob `json:"job"`
}
