package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"babylog/internal/models"
	"babylog/internal/service"
)

// GrowthHandler serves growth measurements
type GrowthHandler struct {
	state *service.AppState
}

// NewGrowthHandler creates a new growth handler
func NewGrowthHandler(state *service.AppState) *GrowthHandler {
	return &GrowthHandler{state: state}
}

// ListEntries returns all growth entries, ascending by date
func (h *GrowthHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"growthEntries": h.state.GrowthEntries(),
	})
}

// CreateEntry validates and stores a new measurement
func (h *GrowthHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.GrowthEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid growth entry payload", "", err)
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := entry.Validate(); err != nil {
		respondWithValidationError(w, err, "Failed to save growth entry")
		return
	}

	if err := h.state.AddGrowthEntry(entry); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save growth entry", "", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"entry": entry})
}
