package handlers

import (
	"encoding/json"
	"net/http"

	"babylog/internal/models"
	"babylog/internal/repository"
	"babylog/internal/service"
)

// PrefsHandler serves app preferences and the onboarding flag. The color
// scheme lives outside the coordinator's state, mirroring the theme layer
// of the UI, so it is read and written through the repository directly.
type PrefsHandler struct {
	state *service.AppState
	prefs *repository.PrefsRepository
}

// NewPrefsHandler creates a new preferences handler
func NewPrefsHandler(state *service.AppState, prefs *repository.PrefsRepository) *PrefsHandler {
	return &PrefsHandler{state: state, prefs: prefs}
}

// GetPreferences returns language, color scheme, theme color and the
// onboarding flag
func (h *PrefsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	scheme, err := h.prefs.ColorScheme()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to read preferences", "", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"language":       h.state.Language(),
		"colorScheme":    scheme,
		"themeColor":     h.state.ThemeColor(),
		"onboardingDone": h.state.OnboardingDone(),
	})
}

// preferencesUpdate is a partial update; absent fields are left unchanged
type preferencesUpdate struct {
	Language    *models.Language    `json:"language"`
	ColorScheme *models.ColorScheme `json:"colorScheme"`
	ThemeColor  *models.ThemeColor  `json:"themeColor"`
}

// UpdatePreferences applies a partial preference change
func (h *PrefsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var update preferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid preferences payload", "", err)
		return
	}

	if update.Language != nil {
		if !models.ValidLanguage(*update.Language) {
			http.Error(w, "language must be fr or en", http.StatusBadRequest)
			return
		}
		if err := h.state.SetLanguage(*update.Language); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save language", "", err)
			return
		}
	}

	if update.ColorScheme != nil {
		switch *update.ColorScheme {
		case models.SchemeDark, models.SchemeLight, models.SchemeSystem:
		default:
			http.Error(w, "color scheme must be dark, light or system", http.StatusBadRequest)
			return
		}
		if err := h.prefs.SetColorScheme(*update.ColorScheme); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save color scheme", "", err)
			return
		}
	}

	if update.ThemeColor != nil {
		switch *update.ThemeColor {
		case models.ThemePeach, models.ThemePink, models.ThemeBlue:
		default:
			http.Error(w, "unknown theme color", http.StatusBadRequest)
			return
		}
		if err := h.state.SetThemeColor(*update.ThemeColor); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save theme color", "", err)
			return
		}
	}

	h.GetPreferences(w, r)
}

// CompleteOnboarding marks onboarding as done
func (h *PrefsHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.state.CompleteOnboarding(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to complete onboarding", "", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"onboardingDone": true})
}
