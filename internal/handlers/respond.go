package handlers

import (
	"encoding/json"
	"net/http"
)

// envelope is the JSON response shape shared by every endpoint: a success
// flag, a message, and endpoint-specific payload keys.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func ok(w http.ResponseWriter, status int, message string, extra envelope) {
	payload := envelope{"success": true, "message": message}
	for k, v := range extra {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"success": false, "message": message})
}

func failValidation(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func failServer(w http.ResponseWriter, message string, err error) {
	payload := envelope{"success": false, "message": message}
	if err != nil {
		payload["error"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, payload)
}
