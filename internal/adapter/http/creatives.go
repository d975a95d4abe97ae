package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-hub/internal/core/domain"
)

// handleListCreatives returns the creatives visible under the current
// filter and sort settings.
func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.View())
}

// handleReplaceCreatives swaps the whole collection for the request body.
func (h *Handler) handleReplaceCreatives(w http.ResponseWriter, r *http.Request) {
	var all []domain.Creative
	if !decodeJSON(w, r, &all) {
		return
	}
	if err := h.svc.Creatives.ReplaceAll(r.Context(), all); err != nil {
		h.writeError(w, "replace creatives", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var c domain.Creative
	if !decodeJSON(w, r, &c) {
		return
	}
	if err := h.validate.Var(c.Name, "required"); err != nil {
		http.Error(w, "validation error: name - required", http.StatusBadRequest)
		return
	}
	if err := h.validate.Var(string(c.Format), "required,oneof=video banner playable"); err != nil {
		http.Error(w, "validation error: type - oneof", http.StatusBadRequest)
		return
	}
	created, err := h.svc.Creatives.Create(r.Context(), c)
	if err != nil {
		h.writeError(w, "create creative", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Creatives.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get creative", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleUpdateCreative merges a partial creative onto the stored one.
// Absent fields are left untouched.
func (h *Handler) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	var patch domain.CreativePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	c, err := h.svc.Creatives.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, "update creative", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleDeleteCreative always answers 204, unknown ids included.
func (h *Handler) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Creatives.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "delete creative", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDuplicateCreative(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Creatives.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "duplicate creative", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}
