// Package response writes the API's JSON bodies. Error responses are a flat
// {"error": "<message>"} object; success bodies are the literal shapes each
// endpoint documents, with no envelope.
package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with a 200 status.
func JSON(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

// Status writes v with an explicit status code.
func Status(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, v)
}

// Error writes the uniform error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
