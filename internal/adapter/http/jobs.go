package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-hub/internal/core/domain"
)

type startJobRequest struct {
	Type       string          `json:"type" validate:"required"`
	BriefID    string          `json:"briefId"`
	CreativeID string          `json:"creativeId"`
	Payload    json.RawMessage `json:"payload"`
}

type clearCompletedResponse struct {
	Removed int `json:"removed"`
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Jobs.List())
}

// handleStartJob registers a generation job. The job always starts in
// processing state regardless of what the client sends.
func (h *Handler) handleStartJob(w http.ResponseWriter, r *http.Request) {
	var req startJobRequest
	if !h.decode(w, r, &req) {
		return
	}
	job, err := h.svc.Jobs.Start(r.Context(), domain.GenerationJob{
		Type:       req.Type,
		BriefID:    req.BriefID,
		CreativeID: req.CreativeID,
		Payload:    req.Payload,
	})
	if err != nil {
		h.writeError(w, "start job", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, job)
}

func (h *Handler) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.svc.Jobs.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get job", err)
		return
	}
	h.writeJSON(w, http.StatusOK, job)
}

func (h *Handler) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var patch domain.JobPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Status != nil {
		if err := h.validate.Var(string(*patch.Status), "oneof=processing completed failed"); err != nil {
			http.Error(w, "validation error: status - oneof", http.StatusBadRequest)
			return
		}
	}
	if patch.Progress != nil {
		if err := h.validate.Var(*patch.Progress, "min=0,max=100"); err != nil {
			http.Error(w, "validation error: progress - range", http.StatusBadRequest)
			return
		}
	}
	job, err := h.svc.Jobs.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, "update job", err)
		return
	}
	h.writeJSON(w, http.StatusOK, job)
}

func (h *Handler) handleRemoveJob(w http.ResponseWriter, r *http.Request) {
	h.svc.Jobs.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClearCompletedJobs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, clearCompletedResponse{Removed: h.svc.Jobs.ClearCompleted()})
}
