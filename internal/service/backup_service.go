package service

import (
	"encoding/json"
	"fmt"
	"os"

	"babylog/internal/models"
	"babylog/internal/repository"
)

// BackupService assembles and restores the whole-state AppData bundle. Import
// is field-partial and issues a fixed sequence of overwrites with no rollback:
// a failure partway leaves the earlier overwrites applied.
type BackupService struct {
	state    *repository.StateRepository
	profiles *repository.ProfileRepository
	events   *repository.EventRepository
	growth   *repository.GrowthRepository
	prefs    *repository.PrefsRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	state *repository.StateRepository,
	profiles *repository.ProfileRepository,
	events *repository.EventRepository,
	growth *repository.GrowthRepository,
	prefs *repository.PrefsRepository,
) *BackupService {
	return &BackupService{
		state:    state,
		profiles: profiles,
		events:   events,
		growth:   growth,
		prefs:    prefs,
	}
}

// ExportData assembles the full AppData snapshot from the store
func (s *BackupService) ExportData() (*models.AppData, error) {
	baby, err := s.profiles.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to export profile: %w", err)
	}
	events, err := s.events.All()
	if err != nil {
		return nil, fmt.Errorf("failed to export events: %w", err)
	}
	entries, err := s.growth.All()
	if err != nil {
		return nil, fmt.Errorf("failed to export growth entries: %w", err)
	}
	onboarding, err := s.prefs.IsOnboardingCompleted()
	if err != nil {
		return nil, fmt.Errorf("failed to export onboarding flag: %w", err)
	}
	language, err := s.prefs.Language()
	if err != nil {
		return nil, fmt.Errorf("failed to export language: %w", err)
	}

	return &models.AppData{
		Baby:                baby,
		Events:              events,
		GrowthEntries:       entries,
		OnboardingCompleted: &onboarding,
		Language:            language,
	}, nil
}

// ImportData overwrites each store whose field is present in the payload.
// Absent fields leave the corresponding store untouched.
func (s *BackupService) ImportData(data *models.AppData) error {
	if data.Baby != nil {
		if err := s.profiles.Save(data.Baby); err != nil {
			return fmt.Errorf("failed to import profile: %w", err)
		}
	}
	if data.Events != nil {
		if err := s.events.ReplaceAll(data.Events); err != nil {
			return fmt.Errorf("failed to import events: %w", err)
		}
	}
	if data.GrowthEntries != nil {
		if err := s.growth.ReplaceAll(data.GrowthEntries); err != nil {
			return fmt.Errorf("failed to import growth entries: %w", err)
		}
	}
	if data.OnboardingCompleted != nil {
		if err := s.prefs.SetOnboardingCompleted(*data.OnboardingCompleted); err != nil {
			return fmt.Errorf("failed to import onboarding flag: %w", err)
		}
	}
	if data.Language != "" {
		if err := s.prefs.SetLanguage(data.Language); err != nil {
			return fmt.Errorf("failed to import language: %w", err)
		}
	}
	return nil
}

// Export writes the AppData snapshot to a JSON file
func (s *BackupService) Export(outputPath string) error {
	data, err := s.ExportData()
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import restores an AppData snapshot from a JSON file
func (s *BackupService) Import(inputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to decode backup file: %w", err)
	}

	return s.ImportData(&data)
}

// Clear wipes every key in the store; used by the full reset flow
func (s *BackupService) Clear() error {
	return s.state.Clear()
}

// HasBackup reports whether restorable data exists, keyed off the presence
// of a stored profile
func (s *BackupService) HasBackup() (bool, error) {
	baby, err := s.profiles.Get()
	if err != nil {
		return false, err
	}
	return baby != nil, nil
}
