package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"babylog/internal/i18n"
	"babylog/internal/service"
	"babylog/internal/stats"

	"babylog/internal/models"
)

// ProfileHandler serves the baby profile
type ProfileHandler struct {
	state *service.AppState
	tr    *i18n.Translator
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(state *service.AppState, tr *i18n.Translator) *ProfileHandler {
	return &ProfileHandler{state: state, tr: tr}
}

// GetProfile returns the profile and its derived age display. A missing
// profile is not an error; the UI routes to onboarding on a null baby.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	baby := h.state.Baby()

	age := ""
	if baby != nil {
		age = stats.BabyAge(baby.Birthday, time.Now(), h.tr)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"baby":       baby,
		"age":        age,
		"themeColor": h.state.ThemeColor(),
	})
}

// SaveProfile validates and stores the profile (onboarding and profile edits)
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var baby models.BabyProfile
	if err := json.NewDecoder(r.Body).Decode(&baby); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid profile payload", "", err)
		return
	}

	if baby.ID == "" {
		baby.ID = uuid.NewString()
	}
	if baby.CreatedAt.IsZero() {
		baby.CreatedAt = time.Now()
	}
	if baby.ThemeColor == "" {
		baby.ThemeColor = models.DefaultThemeColor
	}

	if err := baby.Validate(); err != nil {
		respondWithValidationError(w, err, "Failed to save profile")
		return
	}

	if err := h.state.SetBaby(&baby); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save profile", "", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"baby": &baby})
}
