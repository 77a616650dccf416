package repository

import "babylog/internal/models"

// PrefsRepository stores the small app preferences: the onboarding flag
// (JSON boolean), the UI language and the color scheme (raw strings).
// Absent or malformed values read as their defaults; preference reads never
// surface "not set" to the caller.
type PrefsRepository struct {
	state *StateRepository
}

// NewPrefsRepository creates a new preferences repository
func NewPrefsRepository(state *StateRepository) *PrefsRepository {
	return &PrefsRepository{state: state}
}

// SetOnboardingCompleted persists the onboarding flag
func (r *PrefsRepository) SetOnboardingCompleted(completed bool) error {
	return r.state.SetJSON(KeyOnboardingCompleted, completed)
}

// IsOnboardingCompleted reads the onboarding flag; absence reads as false
func (r *PrefsRepository) IsOnboardingCompleted() (bool, error) {
	var completed bool
	if _, err := r.state.GetJSON(KeyOnboardingCompleted, &completed); err != nil {
		return false, err
	}
	return completed, nil
}

// SetLanguage persists the UI language
func (r *PrefsRepository) SetLanguage(lang models.Language) error {
	return r.state.Set(KeyAppLanguage, string(lang))
}

// Language reads the UI language; absent or unknown values read as the default
func (r *PrefsRepository) Language() (models.Language, error) {
	raw, ok, err := r.state.Get(KeyAppLanguage)
	if err != nil {
		return models.DefaultLanguage, err
	}
	if !ok || !models.ValidLanguage(models.Language(raw)) {
		return models.DefaultLanguage, nil
	}
	return models.Language(raw), nil
}

// SetColorScheme persists the dark/light preference
func (r *PrefsRepository) SetColorScheme(pref models.ColorScheme) error {
	return r.state.Set(KeyColorScheme, string(pref))
}

// ColorScheme reads the dark/light preference; anything unrecognised reads
// as system
func (r *PrefsRepository) ColorScheme() (models.ColorScheme, error) {
	raw, ok, err := r.state.Get(KeyColorScheme)
	if err != nil {
		return models.SchemeSystem, err
	}
	if !ok {
		return models.SchemeSystem, nil
	}
	switch models.ColorScheme(raw) {
	case models.SchemeDark, models.SchemeLight, models.SchemeSystem:
		return models.ColorScheme(raw), nil
	}
	return models.SchemeSystem, nil
}
