package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the uniform error envelope returned by every endpoint
type ErrorResponse struct {
	Timestamp time.Time              `json:"timestamp"`
	Status    int                    `json:"status"`
	Error     string                 `json:"error"`
	Message   string                 `json:"message"`
	Path      string                 `json:"path"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteOK writes a 200 OK response with the given payload
func WriteOK(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, data)
}

// WriteCreated writes a 201 Created response with the given payload
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusCreated, data)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes the error envelope for the given status code
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string, details map[string]interface{}) error {
	return WriteJSON(w, status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
		Details:   details,
	})
}

// WriteBadRequest writes a 400 Bad Request envelope
func WriteBadRequest(w http.ResponseWriter, r *http.Request, message string, details map[string]interface{}) error {
	return WriteError(w, r, http.StatusBadRequest, message, details)
}

// WriteUnauthorized writes a 401 Unauthorized envelope
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) error {
	if message == "" {
		message = "Authentication required"
	}
	return WriteError(w, r, http.StatusUnauthorized, message, nil)
}

// WriteForbidden writes a 403 Forbidden envelope
func WriteForbidden(w http.ResponseWriter, r *http.Request, message string) error {
	if message == "" {
		message = "Access forbidden"
	}
	return WriteError(w, r, http.StatusForbidden, message, nil)
}

// WriteNotFound writes a 404 Not Found envelope
func WriteNotFound(w http.ResponseWriter, r *http.Request, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return WriteError(w, r, http.StatusNotFound, message, nil)
}

// WriteConflict writes a 409 Conflict envelope
func WriteConflict(w http.ResponseWriter, r *http.Request, message string, details map[string]interface{}) error {
	return WriteError(w, r, http.StatusConflict, message, details)
}

// WriteInternalServerError writes a 500 Internal Server Error envelope
func WriteInternalServerError(w http.ResponseWriter, r *http.Request, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return WriteError(w, r, http.StatusInternalServerError, message, nil)
}
