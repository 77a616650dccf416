package service

import (
	"log"
	"sync"

	"babylog/internal/i18n"
	"babylog/internal/models"
	"babylog/internal/repository"
)

// AppState is the single in-memory source of truth for the UI, kept
// synchronized with the store. Every mutation writes through to the store
// first and only then updates memory, so memory never reflects state that
// failed to persist. The original app relied on callers serializing their
// awaits; here a mutex serializes mutations instead, since HTTP handlers run
// concurrently.
type AppState struct {
	mu sync.RWMutex

	profiles *repository.ProfileRepository
	events   *repository.EventRepository
	growth   *repository.GrowthRepository
	prefs    *repository.PrefsRepository
	tr       *i18n.Translator

	baby           *models.BabyProfile
	eventList      []models.BabyEvent
	growthList     []models.GrowthEntry
	onboardingDone bool
	themeColor     models.ThemeColor
	language       models.Language
}

// NewAppState creates the coordinator. Call Load before serving requests.
func NewAppState(
	profiles *repository.ProfileRepository,
	events *repository.EventRepository,
	growth *repository.GrowthRepository,
	prefs *repository.PrefsRepository,
	tr *i18n.Translator,
) *AppState {
	return &AppState{
		profiles:   profiles,
		events:     events,
		growth:     growth,
		prefs:      prefs,
		tr:         tr,
		eventList:  []models.BabyEvent{},
		growthList: []models.GrowthEntry{},
		themeColor: models.DefaultThemeColor,
		language:   models.DefaultLanguage,
	}
}

// Load populates memory from the store. The five loads are independent; a
// failure in one is logged and leaves that slot at its default without
// blocking the others.
func (s *AppState) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var wg sync.WaitGroup
	var (
		baby       *models.BabyProfile
		events     []models.BabyEvent
		entries    []models.GrowthEntry
		onboarding bool
		language   models.Language = models.DefaultLanguage
	)

	load := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("Warning: loading %s: %v", name, err)
			}
		}()
	}

	load("profile", func() (err error) { baby, err = s.profiles.Get(); return })
	load("events", func() (err error) { events, err = s.events.All(); return })
	load("growth entries", func() (err error) { entries, err = s.growth.All(); return })
	load("onboarding flag", func() (err error) { onboarding, err = s.prefs.IsOnboardingCompleted(); return })
	load("language", func() (err error) { language, err = s.prefs.Language(); return })
	wg.Wait()

	if baby != nil {
		s.baby = baby
		if baby.ThemeColor != "" {
			s.themeColor = baby.ThemeColor
		}
	}
	if events != nil {
		s.eventList = events
	}
	if entries != nil {
		s.growthList = entries
	}
	s.onboardingDone = onboarding
	s.language = language
	s.tr.SetLanguage(language)
}

// Baby returns the current profile, or nil before onboarding
func (s *AppState) Baby() *models.BabyProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.baby == nil {
		return nil
	}
	b := *s.baby
	return &b
}

// Events returns a copy of the in-memory event list, newest first
func (s *AppState) Events() []models.BabyEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]models.BabyEvent, len(s.eventList))
	copy(events, s.eventList)
	return events
}

// GrowthEntries returns a copy of the in-memory growth list, ascending by date
func (s *AppState) GrowthEntries() []models.GrowthEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.GrowthEntry, len(s.growthList))
	copy(entries, s.growthList)
	return entries
}

// OnboardingDone reports whether onboarding has been completed
func (s *AppState) OnboardingDone() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboardingDone
}

// ThemeColor returns the active theme color
func (s *AppState) ThemeColor() models.ThemeColor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeColor
}

// Language returns the active language
func (s *AppState) Language() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetBaby persists the profile, then updates the in-memory profile and the
// active theme color
func (s *AppState) SetBaby(baby *models.BabyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.profiles.Save(baby); err != nil {
		return err
	}
	b := *baby
	s.baby = &b
	s.themeColor = baby.ThemeColor
	return nil
}

// AddEvent persists the event, then prepends it in memory
func (s *AppState) AddEvent(event models.BabyEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.events.Save(event); err != nil {
		return err
	}
	s.eventList = append([]models.BabyEvent{event}, s.eventList...)
	return nil
}

// RemoveEvent persists the deletion, then filters the in-memory list
func (s *AppState) RemoveEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.events.Delete(id); err != nil {
		return err
	}
	filtered := make([]models.BabyEvent, 0, len(s.eventList))
	for _, e := range s.eventList {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	s.eventList = filtered
	return nil
}

// RefreshEvents reloads the event list from the store; used after bulk import
func (s *AppState) RefreshEvents() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.events.All()
	if err != nil {
		return err
	}
	s.eventList = events
	return nil
}

// AddGrowthEntry persists the entry, then reloads the list from the store so
// memory picks up the store's date ordering rather than re-sorting locally
func (s *AppState) AddGrowthEntry(entry models.GrowthEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.growth.Save(entry); err != nil {
		return err
	}
	entries, err := s.growth.All()
	if err != nil {
		return err
	}
	s.growthList = entries
	return nil
}

// RefreshGrowth reloads the growth list from the store; used after bulk import
func (s *AppState) RefreshGrowth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.growth.All()
	if err != nil {
		return err
	}
	s.growthList = entries
	return nil
}

// CompleteOnboarding marks onboarding done in the store and memory
func (s *AppState) CompleteOnboarding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prefs.SetOnboardingCompleted(true); err != nil {
		return err
	}
	s.onboardingDone = true
	return nil
}

// SetThemeColor switches the active theme and, when a profile exists,
// persists the profile with the new color
func (s *AppState) SetThemeColor(color models.ThemeColor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baby != nil {
		updated := *s.baby
		updated.ThemeColor = color
		if err := s.profiles.Save(&updated); err != nil {
			return err
		}
		s.baby = &updated
	}
	s.themeColor = color
	return nil
}

// SetLanguage persists the language and propagates it to the translator
func (s *AppState) SetLanguage(lang models.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prefs.SetLanguage(lang); err != nil {
		return err
	}
	s.language = lang
	s.tr.SetLanguage(lang)
	return nil
}

// Reload re-reads everything from the store; used after import and reset
func (s *AppState) Reload() {
	s.mu.Lock()
	s.baby = nil
	s.eventList = []models.BabyEvent{}
	s.growthList = []models.GrowthEntry{}
	s.onboardingDone = false
	s.themeColor = models.DefaultThemeColor
	s.language = models.DefaultLanguage
	s.mu.Unlock()
	s.Load()
}
