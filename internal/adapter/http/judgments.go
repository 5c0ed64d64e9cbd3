package httpadapter

import (
	"net/http"
)

// handleRunJudgments loads campaigns from the record source, judges them
// and returns the report. Campaigns with invalid records are listed under
// failures and do not fail the request.
func (h *Handler) handleRunJudgments(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Run(r.Context())
	if err != nil {
		h.writeError(w, "run judgments", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newReportResponse(report, h.render))
}

// handleJudgeBatch judges the campaigns posted in the request body. It is
// used by callers that keep their own performance data. Malformed bodies
// produce HTTP 400.
func (h *Handler) handleJudgeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := h.decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	report, err := h.svc.Judge(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, "judge batch", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newReportResponse(report, h.render))
}
