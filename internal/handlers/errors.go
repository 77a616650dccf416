package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"babylog/internal/models"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

// respondWithValidationError surfaces a field constraint violation as a 400
// carrying the message; anything else is a generic storage failure.
func respondWithValidationError(w http.ResponseWriter, err error, failMsg string) {
	var verr models.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	respondWithError(w, http.StatusInternalServerError, failMsg, "", err)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
