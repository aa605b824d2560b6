package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body shape. Every endpoint, success or
// failure, writes {"success": bool, "message"?: string, ...payload}.
type Envelope map[string]any

// Success writes payload with success=true merged in.
func Success(w http.ResponseWriter, status int, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// Failure writes a failure envelope with a human-readable message.
func Failure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{
		"success": false,
		"message": message,
	})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Failure(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 failure envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	Failure(w, http.StatusUnauthorized, message)
}

// Conflict writes a 409 failure envelope.
func Conflict(w http.ResponseWriter, message string) {
	Failure(w, http.StatusConflict, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, message string) {
	Failure(w, http.StatusNotFound, message)
}

// MethodNotAllowed writes a 405 failure envelope.
func MethodNotAllowed(w http.ResponseWriter) {
	Failure(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalError writes a 500 failure envelope. The message should be generic;
// internal detail belongs in the server-side log, not the response.
func InternalError(w http.ResponseWriter, message string) {
	Failure(w, http.StatusInternalServerError, message)
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
