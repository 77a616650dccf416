package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"babylog/internal/database"
	"babylog/internal/models"
)

// newTestState opens a throwaway SQLite store for repository tests
func newTestState(t *testing.T) *StateRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return NewStateRepository(db)
}

func TestStateRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	state := newTestState(t)

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := state.Get("nope")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() reported a missing key as present")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := state.Set("app_language", "en"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		value, ok, err := state.Get("app_language")
		if err != nil || !ok {
			t.Fatalf("Get() = %v, ok %v", err, ok)
		}
		if value != "en" {
			t.Errorf("Get() = %q, want %q", value, "en")
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := state.Set("app_language", "fr"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		value, _, _ := state.Get("app_language")
		if value != "fr" {
			t.Errorf("Get() = %q, want %q", value, "fr")
		}
	})

	t.Run("delete removes one key", func(t *testing.T) {
		if err := state.Set("color_scheme_preference", "dark"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := state.Delete("color_scheme_preference"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		_, ok, _ := state.Get("color_scheme_preference")
		if ok {
			t.Error("Get() found a deleted key")
		}
		if err := state.Delete("color_scheme_preference"); err != nil {
			t.Errorf("Delete() of absent key should be a no-op, got %v", err)
		}
	})

	t.Run("clear removes everything", func(t *testing.T) {
		if err := state.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		_, ok, _ := state.Get("app_language")
		if ok {
			t.Error("Get() found a key after Clear()")
		}
	})
}

func TestProfileRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewProfileRepository(newTestState(t))

	t.Run("empty store returns nil", func(t *testing.T) {
		profile, err := repo.Get()
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if profile != nil {
			t.Errorf("Get() = %+v, want nil", profile)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		saved := &models.BabyProfile{
			ID:         "p1",
			Name:       "Léa",
			Gender:     models.GenderGirl,
			Birthday:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			ThemeColor: models.ThemePink,
			CreatedAt:  time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC),
		}
		if err := repo.Save(saved); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := repo.Get()
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got == nil {
			t.Fatal("Get() = nil after Save()")
		}
		if got.Name != saved.Name || got.Gender != saved.Gender || got.ThemeColor != saved.ThemeColor {
			t.Errorf("Get() = %+v, want %+v", got, saved)
		}
		if !got.Birthday.Equal(saved.Birthday) {
			t.Errorf("Birthday = %v, want %v", got.Birthday, saved.Birthday)
		}
	})
}

func TestEventRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewEventRepository(newTestState(t))
	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("empty store returns empty slice", func(t *testing.T) {
		events, err := repo.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if events == nil || len(events) != 0 {
			t.Errorf("All() = %v, want empty slice", events)
		}
	})

	t.Run("save prepends", func(t *testing.T) {
		first := models.BabyEvent{ID: "e1", Type: models.EventSleep, StartTime: base}
		second := models.BabyEvent{ID: "e2", Type: models.EventDiaper, StartTime: base.Add(time.Hour), DiaperType: models.DiaperWet}

		if err := repo.Save(first); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := repo.Save(second); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		events, err := repo.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("len(All()) = %d, want 2", len(events))
		}
		if events[0].ID != "e2" || events[1].ID != "e1" {
			t.Errorf("order = [%s, %s], want newest first [e2, e1]", events[0].ID, events[1].ID)
		}
	})

	t.Run("delete removes by id", func(t *testing.T) {
		if err := repo.Delete("e1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		events, _ := repo.All()
		if len(events) != 1 || events[0].ID != "e2" {
			t.Errorf("All() after delete = %v, want only e2", events)
		}
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		if err := repo.Delete("missing"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		events, _ := repo.All()
		if len(events) != 1 {
			t.Errorf("len(All()) = %d, want 1", len(events))
		}
	})

	t.Run("replace all", func(t *testing.T) {
		imported := []models.BabyEvent{
			{ID: "i1", Type: models.EventBath, StartTime: base},
		}
		if err := repo.ReplaceAll(imported); err != nil {
			t.Fatalf("ReplaceAll() error = %v", err)
		}
		events, _ := repo.All()
		if len(events) != 1 || events[0].ID != "i1" {
			t.Errorf("All() = %v, want imported collection", events)
		}
	})
}

func TestGrowthRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewGrowthRepository(newTestState(t))
	weight := 5.6

	t.Run("save keeps entries sorted by date", func(t *testing.T) {
		later := models.GrowthEntry{ID: "g2", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Weight: &weight}
		earlier := models.GrowthEntry{ID: "g1", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Weight: &weight}

		if err := repo.Save(later); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := repo.Save(earlier); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		entries, err := repo.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("len(All()) = %d, want 2", len(entries))
		}
		if entries[0].ID != "g1" || entries[1].ID != "g2" {
			t.Errorf("order = [%s, %s], want ascending [g1, g2]", entries[0].ID, entries[1].ID)
		}
	})

	t.Run("measurement pointers survive the round trip", func(t *testing.T) {
		entries, _ := repo.All()
		if entries[0].Weight == nil || *entries[0].Weight != weight {
			t.Errorf("Weight = %v, want %v", entries[0].Weight, weight)
		}
		if entries[0].Height != nil {
			t.Errorf("Height = %v, want nil", entries[0].Height)
		}
	})
}

func TestPrefsRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewPrefsRepository(newTestState(t))

	t.Run("onboarding defaults to false", func(t *testing.T) {
		completed, err := repo.IsOnboardingCompleted()
		if err != nil {
			t.Fatalf("IsOnboardingCompleted() error = %v", err)
		}
		if completed {
			t.Error("IsOnboardingCompleted() = true on empty store")
		}
	})

	t.Run("onboarding round trip", func(t *testing.T) {
		if err := repo.SetOnboardingCompleted(true); err != nil {
			t.Fatalf("SetOnboardingCompleted() error = %v", err)
		}
		completed, _ := repo.IsOnboardingCompleted()
		if !completed {
			t.Error("IsOnboardingCompleted() = false after set")
		}
	})

	t.Run("language defaults to french", func(t *testing.T) {
		lang, err := repo.Language()
		if err != nil {
			t.Fatalf("Language() error = %v", err)
		}
		if lang != models.LanguageFrench {
			t.Errorf("Language() = %v, want fr", lang)
		}
	})

	t.Run("language round trip", func(t *testing.T) {
		if err := repo.SetLanguage(models.LanguageEnglish); err != nil {
			t.Fatalf("SetLanguage() error = %v", err)
		}
		lang, _ := repo.Language()
		if lang != models.LanguageEnglish {
			t.Errorf("Language() = %v, want en", lang)
		}
	})

	t.Run("unknown stored language reads as default", func(t *testing.T) {
		repoWithJunk := NewPrefsRepository(newTestState(t))
		if err := repoWithJunk.state.Set(KeyAppLanguage, "de"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		lang, _ := repoWithJunk.Language()
		if lang != models.DefaultLanguage {
			t.Errorf("Language() = %v, want default", lang)
		}
	})

	t.Run("color scheme defaults to system", func(t *testing.T) {
		scheme, err := repo.ColorScheme()
		if err != nil {
			t.Fatalf("ColorScheme() error = %v", err)
		}
		if scheme != models.SchemeSystem {
			t.Errorf("ColorScheme() = %v, want system", scheme)
		}
	})

	t.Run("color scheme round trip", func(t *testing.T) {
		if err := repo.SetColorScheme(models.SchemeDark); err != nil {
			t.Fatalf("SetColorScheme() error = %v", err)
		}
		scheme, _ := repo.ColorScheme()
		if scheme != models.SchemeDark {
			t.Errorf("ColorScheme() = %v, want dark", scheme)
		}
	})
}
