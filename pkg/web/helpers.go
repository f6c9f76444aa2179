package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, MessageResponse{Message: message})
}

// ParseID extracts the numeric resource ID from the request path.
// Anything but a positive integer is answered with 400 and reported as false.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, ok := parseValidate(pathValueID, gt(0))
	if !ok {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", pathValueID))
		return 0, false
	}
	return id, true
}

// NotFound answers unknown routes with a JSON body.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		RespondError(w, logger, http.StatusNotFound, "Not found")
	}
}

// MethodNotAllowed answers known routes requested with an unsupported method.
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		RespondError(w, logger, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
