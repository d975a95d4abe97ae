package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-hub/internal/core/domain"
)

type sortRequest struct {
	SortBy    domain.SortKey   `json:"sortBy" validate:"required"`
	SortOrder domain.SortOrder `json:"sortOrder" validate:"required,oneof=asc desc"`
}

type viewModeRequest struct {
	ViewMode domain.ViewMode `json:"viewMode" validate:"required,oneof=grid list"`
}

type selectionRequest struct {
	IDs []string `json:"ids" validate:"dive,required"`
}

type selectionResponse struct {
	Selected []string `json:"selectedCreatives"`
}

func (h *Handler) handleGetView(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.State())
}

// handleSetFilter merges the body into the active filter. Omitted criteria
// keep their value; an explicit empty list matches nothing.
func (h *Handler) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var patch domain.CreativeFilter
	if !decodeJSON(w, r, &patch) {
		return
	}
	if pt := patch.PerformanceThreshold; pt != nil {
		if err := h.validate.Var(string(pt.Operator), "oneof=gt lt eq"); err != nil {
			http.Error(w, "validation error: operator - oneof", http.StatusBadRequest)
			return
		}
	}
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.SetFilter(patch))
}

func (h *Handler) handleClearFilter(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.ClearFilter())
}

// handleSetSort accepts any sort key. Keys the view does not know leave the
// order unchanged.
func (h *Handler) handleSetSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.SetSorting(req.SortBy, req.SortOrder))
}

func (h *Handler) handleSetViewMode(w http.ResponseWriter, r *http.Request) {
	var req viewModeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Creatives.SetViewMode(req.ViewMode))
}

func (h *Handler) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, selectionResponse{Selected: h.svc.Creatives.Selected()})
}

func (h *Handler) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, selectionResponse{Selected: h.svc.Creatives.SetSelected(req.IDs)})
}

func (h *Handler) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, selectionResponse{Selected: h.svc.Creatives.ClearSelection()})
}

func (h *Handler) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	ids := h.svc.Creatives.ToggleSelected(chi.URLParam(r, "id"))
	h.writeJSON(w, http.StatusOK, selectionResponse{Selected: ids})
}
