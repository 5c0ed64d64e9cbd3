package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-judge/internal/core/domain"
)

// handleSetOverride reclassifies a campaign until the end of the day. It
// expects a {key} path parameter and a JSON body with the classification.
// Requesting the classification the rules already produced clears the
// override and returns HTTP 204. Unknown campaigns result in HTTP 404.
func (h *Handler) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "missing campaign key", http.StatusBadRequest)
		return
	}
	var req overrideRequest
	if err := h.decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := h.svc.SetOverride(r.Context(), key, domain.Classification(req.Classification), req.Memo)
	if err != nil {
		h.writeError(w, "set override", err)
		return
	}
	if o == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, newOverrideResponse(o))
}

// handleClearOverride removes a campaign's override. Clearing a campaign
// without one is not an error.
func (h *Handler) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.svc.ClearOverride(r.Context(), key); err != nil {
		h.writeError(w, "clear override", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
