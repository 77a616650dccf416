package repository

import "babylog/internal/models"

// ProfileRepository stores the singleton baby profile
type ProfileRepository struct {
	state *StateRepository
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(state *StateRepository) *ProfileRepository {
	return &ProfileRepository{state: state}
}

// Save replaces the stored profile. The caller guarantees the profile has
// been validated.
func (r *ProfileRepository) Save(profile *models.BabyProfile) error {
	return r.state.SetJSON(KeyBabyProfile, profile)
}

// Get returns the stored profile, or nil when none has been created yet
func (r *ProfileRepository) Get() (*models.BabyProfile, error) {
	var profile models.BabyProfile
	ok, err := r.state.GetJSON(KeyBabyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &profile, nil
}
