package port

import (
	"context"

	"creative-hub/internal/core/domain"
)

// PlayableUseCase validates playable configs and keeps the latest result
// per creative.
type PlayableUseCase interface {
	Validate(ctx context.Context, cfg domain.PlayableConfig) (domain.PlayableValidation, error)
	LatestValidation(creativeID string) (domain.PlayableValidation, error)
}
