package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"creative-hub/internal/core/port"
)

// Services bundles the use cases the HTTP adapter drives. Uploader may be
// nil when object storage is not configured.
type Services struct {
	Creatives port.CreativeUseCase
	Jobs      port.JobUseCase
	Playables port.PlayableUseCase
	Catalog   port.Catalog
	Uploader  port.Uploader

	MaxUploadBytes int64
	PresignTTL     time.Duration
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router under /api/v1.
type Handler struct {
	svc      Services
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/creatives", func(r chi.Router) {
			r.Get("/", h.handleListCreatives)
			r.Put("/", h.handleReplaceCreatives)
			r.Post("/", h.handleCreateCreative)
			r.Get("/{id}", h.handleGetCreative)
			r.Patch("/{id}", h.handleUpdateCreative)
			r.Delete("/{id}", h.handleDeleteCreative)
			r.Post("/{id}/duplicate", h.handleDuplicateCreative)
		})

		r.Get("/view", h.handleGetView)
		r.Patch("/view/filter", h.handleSetFilter)
		r.Delete("/view/filter", h.handleClearFilter)
		r.Put("/view/sort", h.handleSetSort)
		r.Put("/view/mode", h.handleSetViewMode)

		r.Get("/selection", h.handleGetSelection)
		r.Put("/selection", h.handleSetSelection)
		r.Delete("/selection", h.handleClearSelection)
		r.Post("/selection/{id}/toggle", h.handleToggleSelection)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.handleListJobs)
			r.Post("/", h.handleStartJob)
			r.Post("/clear-completed", h.handleClearCompletedJobs)
			r.Get("/{id}", h.handleGetJob)
			r.Patch("/{id}", h.handleUpdateJob)
			r.Delete("/{id}", h.handleRemoveJob)
		})

		r.Get("/briefs", h.handleListBriefs)
		r.Get("/briefs/{id}", h.handleGetBrief)
		r.Get("/patterns", h.handleListPatterns)

		r.Post("/playables/validate", h.handleValidatePlayable)
		r.Get("/playables/{creativeID}/validation", h.handleLatestValidation)

		r.Post("/uploads", h.handleUpload)
		r.Post("/uploads/presign", h.handlePresign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
