package http

import (
	"context"
	"encoding/json"
	"net/http"

	"versewake/internal/logger"
)

// APIResponse is the envelope for every JSON reply.
type APIResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// writeJSON encodes the envelope with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.WarnKV(context.Background(), "Failed to encode response", "error", err)
	}
}

// respondSuccess writes a 200 envelope with the given payload.
func respondSuccess(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, APIResponse{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{
		Status:  statusCode,
		Success: false,
		Message: message,
	})
}
