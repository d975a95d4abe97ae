package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port"
)

// Ad network limits applied on top of the struct tags.
const (
	MaxPlayableFileSize = 5 << 20 // bytes
	MaxPlayableLoadMS   = 3000
)

type creativeLookup interface {
	Get(id string) (domain.Creative, bool)
}

// PlayableUseCase implements port.PlayableUseCase. Results are kept in
// memory, one per creative.
type PlayableUseCase struct {
	creatives creativeLookup
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.RWMutex
	latest map[string]domain.PlayableValidation
}

// NewPlayableUseCase creates a validator over the creatives in lookup.
func NewPlayableUseCase(lookup creativeLookup, logger *slog.Logger) *PlayableUseCase {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &PlayableUseCase{
		creatives: lookup,
		validate:  v,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		latest:    make(map[string]domain.PlayableValidation),
	}
}

// Validate checks cfg and records the outcome as the latest validation of
// its creative. The creative must exist and be a playable.
func (u *PlayableUseCase) Validate(ctx context.Context, cfg domain.PlayableConfig) (domain.PlayableValidation, error) {
	if cfg.CreativeID == "" {
		return domain.PlayableValidation{}, fmt.Errorf("creativeId is required: %w", port.ErrInvalidInput)
	}
	c, ok := u.creatives.Get(cfg.CreativeID)
	if !ok {
		return domain.PlayableValidation{}, fmt.Errorf("creative %s: %w", cfg.CreativeID, port.ErrNotFound)
	}
	if c.Format != domain.FormatPlayable {
		return domain.PlayableValidation{}, fmt.Errorf("creative %s is a %s, not a playable: %w", c.ID, c.Format, port.ErrInvalidInput)
	}

	issues, err := u.tagIssues(ctx, cfg)
	if err != nil {
		return domain.PlayableValidation{}, err
	}
	issues = append(issues, networkIssues(cfg)...)

	res := domain.PlayableValidation{
		ID:         uuid.NewString(),
		CreativeID: cfg.CreativeID,
		Valid:      true,
		Issues:     issues,
		Config:     cfg,
		CheckedAt:  u.now(),
	}
	for _, is := range issues {
		if is.Severity == domain.SeverityError {
			res.Valid = false
			break
		}
	}

	u.mu.Lock()
	u.latest[cfg.CreativeID] = res
	u.mu.Unlock()

	u.logger.Info("playable validated",
		slog.String("creative_id", cfg.CreativeID),
		slog.Bool("valid", res.Valid),
		slog.Int("issues", len(issues)))
	return res, nil
}

// LatestValidation returns the most recent result for creativeID.
func (u *PlayableUseCase) LatestValidation(creativeID string) (domain.PlayableValidation, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	res, ok := u.latest[creativeID]
	if !ok {
		return domain.PlayableValidation{}, fmt.Errorf("validation for %s: %w", creativeID, port.ErrNotFound)
	}
	return res, nil
}

func (u *PlayableUseCase) tagIssues(ctx context.Context, cfg domain.PlayableConfig) ([]domain.ValidationIssue, error) {
	err := u.validate.StructCtx(ctx, cfg)
	if err == nil {
		return []domain.ValidationIssue{}, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate playable config: %w", err)
	}
	issues := make([]domain.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		issues = append(issues, domain.ValidationIssue{
			Field:    field,
			Rule:     fe.Tag(),
			Message:  tagMessage(field, fe),
			Severity: domain.SeverityError,
		})
	}
	return issues, nil
}

func tagMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "gt", "gte":
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func networkIssues(cfg domain.PlayableConfig) []domain.ValidationIssue {
	var out []domain.ValidationIssue
	if cfg.FileSize > MaxPlayableFileSize {
		out = append(out, domain.ValidationIssue{
			Field:    "fileSize",
			Rule:     "maxFileSize",
			Message:  fmt.Sprintf("file size %d exceeds the %d byte network limit", cfg.FileSize, MaxPlayableFileSize),
			Severity: domain.SeverityError,
		})
	}
	if cfg.Engine == domain.EngineMRAID && cfg.CTAURL == "" {
		out = append(out, domain.ValidationIssue{
			Field:    "ctaUrl",
			Rule:     "mraidCta",
			Message:  "mraid playables must declare a CTA URL",
			Severity: domain.SeverityError,
		})
	}
	switch {
	case cfg.Orientation == domain.OrientationPortrait && cfg.Width > cfg.Height:
		out = append(out, domain.ValidationIssue{
			Field:    "orientation",
			Rule:     "dimensions",
			Message:  fmt.Sprintf("portrait playable is wider than tall (%dx%d)", cfg.Width, cfg.Height),
			Severity: domain.SeverityWarning,
		})
	case cfg.Orientation == domain.OrientationLandscape && cfg.Height > cfg.Width:
		out = append(out, domain.ValidationIssue{
			Field:    "orientation",
			Rule:     "dimensions",
			Message:  fmt.Sprintf("landscape playable is taller than wide (%dx%d)", cfg.Width, cfg.Height),
			Severity: domain.SeverityWarning,
		})
	}
	if cfg.MaxLoadMS > MaxPlayableLoadMS {
		out = append(out, domain.ValidationIssue{
			Field:    "maxLoadMs",
			Rule:     "maxLoadTime",
			Message:  fmt.Sprintf("load time %dms is above the recommended %dms", cfg.MaxLoadMS, MaxPlayableLoadMS),
			Severity: domain.SeverityWarning,
		})
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
