package httpadapter

import (
	"net/http"
)

// handleScanAnomalies returns the anomalous findings of all stored
// campaigns, worst first.
func (h *Handler) handleScanAnomalies(w http.ResponseWriter, r *http.Request) {
	findings, err := h.svc.ScanAnomalies(r.Context())
	if err != nil {
		h.writeError(w, "scan anomalies", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newAnomalyResponses(findings))
}

// handleDetectAnomalies runs detection over the posted campaigns.
func (h *Handler) handleDetectAnomalies(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := h.decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	findings, err := h.svc.DetectAnomalies(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, "detect anomalies", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newAnomalyResponses(findings))
}
