package response

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/tool-agent/pkg/logger"
)

// WriteSuccess encodes data as the response body without an envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; headers are already sent
		logger.FromContextOr(r.Context(), h.Log).Error("failed to encode success response", "error", err)
	}
}
