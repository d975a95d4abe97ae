package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleListBriefs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Catalog.Briefs())
}

func (h *Handler) handleGetBrief(w http.ResponseWriter, r *http.Request) {
	b, ok := h.svc.Catalog.Brief(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleListPatterns(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Catalog.Patterns())
}
