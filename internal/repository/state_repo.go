package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"babylog/internal/database"
)

// Storage keys for the app_state namespace. These names are part of the
// persisted format and must not change.
const (
	KeyBabyProfile         = "baby_profile"
	KeyBabyEvents          = "baby_events"
	KeyGrowthEntries       = "growth_entries"
	KeyOnboardingCompleted = "onboarding_completed"
	KeyAppLanguage         = "app_language"
	KeyColorScheme         = "color_scheme_preference"
)

// StateRepository is the raw key-value layer over the app_state table.
// Every other repository is a typed view of one key.
type StateRepository struct {
	db *database.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *database.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves a raw value by key. A missing key is not an error; it is
// reported through the second return value.
func (r *StateRepository) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT state_value FROM app_state WHERE state_key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces a raw value
func (r *StateRepository) Set(key, value string) error {
	query := r.db.Dialect.UpsertState()
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetJSON reads a key and unmarshals it into v. Returns false without
// touching v when the key is absent.
func (r *StateRepository) GetJSON(key string, v interface{}) (bool, error) {
	raw, ok, err := r.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key
func (r *StateRepository) SetJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.Set(key, string(raw))
}

// Delete removes a single key; deleting an absent key is a no-op
func (r *StateRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM app_state WHERE state_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every key in the namespace; used by full reset flows
func (r *StateRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM app_state`); err != nil {
		return fmt.Errorf("failed to clear app state: %w", err)
	}
	return nil
}
