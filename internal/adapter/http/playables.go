package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-hub/internal/core/domain"
)

// handleValidatePlayable runs the playable checks and returns the stored
// result. Rule violations are reported in the body with a 200; only an
// unknown or non-playable creative is an HTTP error.
func (h *Handler) handleValidatePlayable(w http.ResponseWriter, r *http.Request) {
	var cfg domain.PlayableConfig
	if !decodeJSON(w, r, &cfg) {
		return
	}
	res, err := h.svc.Playables.Validate(r.Context(), cfg)
	if err != nil {
		h.writeError(w, "validate playable", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleLatestValidation(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Playables.LatestValidation(chi.URLParam(r, "creativeID"))
	if err != nil {
		h.writeError(w, "latest validation", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
