package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/service"
)

// apiResponse is the JSON envelope every endpoint answers with.
type apiResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{Code: status, Message: message, Data: data}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, err.Error(), nil)
		return
	}

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		writeJSON(w, http.StatusNotFound, err.Error(), nil)
	case domain.KindConflict, domain.KindInvalidState:
		writeJSON(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "transaction failed: database transaction failed or data is inconsistent", nil)
	}
}
