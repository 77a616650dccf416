package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"babylog/internal/database"
	"babylog/internal/i18n"
	"babylog/internal/models"
	"babylog/internal/repository"
	"babylog/internal/service"
)

// newTestServer wires a full API over a throwaway SQLite store
func newTestServer(t *testing.T) (*httptest.Server, *service.AppState) {
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

	state := repository.NewStateRepository(db)
	profiles := repository.NewProfileRepository(state)
	events := repository.NewEventRepository(state)
	growth := repository.NewGrowthRepository(state)
	prefs := repository.NewPrefsRepository(state)
	tr := i18n.New(models.DefaultLanguage)

	appState := service.NewAppState(profiles, events, growth, prefs, tr)
	appState.Load()
	backupService := service.NewBackupService(state, profiles, events, growth, prefs)

	profileHandler := NewProfileHandler(appState, tr)
	eventHandler := NewEventHandler(appState, tr)
	growthHandler := NewGrowthHandler(appState)
	prefsHandler := NewPrefsHandler(appState, prefs)
	statsHandler := NewStatsHandler(appState, tr, "")
	backupHandler := NewBackupHandler(backupService, appState)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profile", profileHandler.GetProfile)
	mux.HandleFunc("PUT /api/profile", profileHandler.SaveProfile)
	mux.HandleFunc("GET /api/events", eventHandler.ListEvents)
	mux.HandleFunc("POST /api/events", eventHandler.CreateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", eventHandler.DeleteEvent)
	mux.HandleFunc("GET /api/growth", growthHandler.ListEntries)
	mux.HandleFunc("POST /api/growth", growthHandler.CreateEntry)
	mux.HandleFunc("GET /api/preferences", prefsHandler.GetPreferences)
	mux.HandleFunc("PUT /api/preferences", prefsHandler.UpdatePreferences)
	mux.HandleFunc("POST /api/onboarding/complete", prefsHandler.CompleteOnboarding)
	mux.HandleFunc("GET /api/dashboard", statsHandler.Dashboard)
	mux.HandleFunc("GET /api/stats/trends", statsHandler.Trends)
	mux.HandleFunc("GET /api/stats/growth", statsHandler.GrowthChartData)
	mux.HandleFunc("GET /api/backup/exists", backupHandler.HasBackup)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, appState
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestProfileEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, _ := newTestServer(t)

	t.Run("profile is null before onboarding", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/profile", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var body struct {
			Baby       *models.BabyProfile `json:"baby"`
			Age        string              `json:"age"`
			ThemeColor string              `json:"themeColor"`
		}
		decodeBody(t, resp, &body)
		if body.Baby != nil {
			t.Errorf("baby = %+v, want null", body.Baby)
		}
		if body.ThemeColor != string(models.DefaultThemeColor) {
			t.Errorf("themeColor = %q, want default", body.ThemeColor)
		}
	})

	t.Run("save then read profile", func(t *testing.T) {
		payload := `{"name":"Léa","gender":"girl","birthday":"2025-03-15T00:00:00Z","themeColor":"pink"}`
		resp := doJSON(t, "PUT", server.URL+"/api/profile", payload)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		resp.Body.Close()

		resp = doJSON(t, "GET", server.URL+"/api/profile", "")
		var body struct {
			Baby *models.BabyProfile `json:"baby"`
			Age  string              `json:"age"`
		}
		decodeBody(t, resp, &body)
		if body.Baby == nil || body.Baby.Name != "Léa" {
			t.Errorf("baby = %+v, want saved profile", body.Baby)
		}
		if body.Baby != nil && body.Baby.ID == "" {
			t.Error("saved profile should get a generated id")
		}
		if body.Age == "" {
			t.Error("age should be derived for a saved profile")
		}
	})

	t.Run("invalid profile rejected", func(t *testing.T) {
		payload := `{"name":"","gender":"girl","birthday":"2025-03-15T00:00:00Z"}`
		resp := doJSON(t, "PUT", server.URL+"/api/profile", payload)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestEventEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, _ := newTestServer(t)

	t.Run("create events", func(t *testing.T) {
		payloads := []string{
			`{"type":"sleep","startTime":"2026-01-10T08:00:00Z"}`,
			`{"type":"bottle","startTime":"2026-01-10T10:00:00Z","amountMl":120}`,
			`{"type":"diaper","startTime":"2026-01-10T11:00:00Z","diaperType":"wet"}`,
		}
		for _, p := range payloads {
			resp := doJSON(t, "POST", server.URL+"/api/events", p)
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("status = %d, want 201 for %s", resp.StatusCode, p)
			}
			resp.Body.Close()
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/events", "")
		var body struct {
			Events []struct {
				models.BabyEvent
				Detail string `json:"detail"`
			} `json:"events"`
		}
		decodeBody(t, resp, &body)
		if len(body.Events) != 3 {
			t.Fatalf("len(events) = %d, want 3", len(body.Events))
		}
		if body.Events[0].Type != models.EventDiaper {
			t.Errorf("first event = %v, want newest (diaper)", body.Events[0].Type)
		}
		if body.Events[0].Detail != "Pipi" {
			t.Errorf("detail = %q, want translated diaper kind", body.Events[0].Detail)
		}
	})

	t.Run("filter by type", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/events?type=bottle", "")
		var body struct {
			Events []models.BabyEvent `json:"events"`
		}
		decodeBody(t, resp, &body)
		if len(body.Events) != 1 || body.Events[0].Type != models.EventBottle {
			t.Errorf("events = %+v, want single bottle", body.Events)
		}
	})

	t.Run("invalid event rejected", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/events", `{"type":"bottle","startTime":"2026-01-10T10:00:00Z"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("delete event", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/events?type=sleep", "")
		var body struct {
			Events []models.BabyEvent `json:"events"`
		}
		decodeBody(t, resp, &body)
		if len(body.Events) != 1 {
			t.Fatalf("expected one sleep event, got %d", len(body.Events))
		}

		resp = doJSON(t, "DELETE", server.URL+"/api/events/"+body.Events[0].ID, "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", resp.StatusCode)
		}

		resp = doJSON(t, "GET", server.URL+"/api/events?type=sleep", "")
		decodeBody(t, resp, &body)
		if len(body.Events) != 0 {
			t.Errorf("events = %+v, want empty after delete", body.Events)
		}
	})
}

func TestGrowthEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, _ := newTestServer(t)

	t.Run("create entries returns sorted list", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/growth", `{"date":"2026-02-01T00:00:00Z","weight":6.4}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		resp.Body.Close()

		resp = doJSON(t, "POST", server.URL+"/api/growth", `{"date":"2026-01-01T00:00:00Z","weight":5.8}`)
		resp.Body.Close()

		resp = doJSON(t, "GET", server.URL+"/api/growth", "")
		var body struct {
			Entries []models.GrowthEntry `json:"growthEntries"`
		}
		decodeBody(t, resp, &body)
		if len(body.Entries) != 2 {
			t.Fatalf("len(entries) = %d, want 2", len(body.Entries))
		}
		if !body.Entries[0].Date.Before(body.Entries[1].Date) {
			t.Errorf("entries not sorted ascending: %v, %v", body.Entries[0].Date, body.Entries[1].Date)
		}
	})

	t.Run("entry without measurements rejected", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/growth", `{"date":"2026-02-01T00:00:00Z"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestPreferencesEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, _ := newTestServer(t)

	t.Run("defaults", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/preferences", "")
		var body struct {
			Language       string `json:"language"`
			ColorScheme    string `json:"colorScheme"`
			OnboardingDone bool   `json:"onboardingDone"`
		}
		decodeBody(t, resp, &body)
		if body.Language != "fr" {
			t.Errorf("language = %q, want fr", body.Language)
		}
		if body.ColorScheme != "system" {
			t.Errorf("colorScheme = %q, want system", body.ColorScheme)
		}
		if body.OnboardingDone {
			t.Error("onboardingDone = true, want false")
		}
	})

	t.Run("partial update", func(t *testing.T) {
		resp := doJSON(t, "PUT", server.URL+"/api/preferences", `{"language":"en"}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		resp = doJSON(t, "GET", server.URL+"/api/preferences", "")
		var body struct {
			Language    string `json:"language"`
			ColorScheme string `json:"colorScheme"`
		}
		decodeBody(t, resp, &body)
		if body.Language != "en" {
			t.Errorf("language = %q, want en", body.Language)
		}
		if body.ColorScheme != "system" {
			t.Errorf("colorScheme = %q, want untouched system", body.ColorScheme)
		}
	})

	t.Run("unknown language rejected", func(t *testing.T) {
		resp := doJSON(t, "PUT", server.URL+"/api/preferences", `{"language":"de"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("complete onboarding", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/onboarding/complete", "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		resp = doJSON(t, "GET", server.URL+"/api/preferences", "")
		var body struct {
			OnboardingDone bool `json:"onboardingDone"`
		}
		decodeBody(t, resp, &body)
		if !body.OnboardingDone {
			t.Error("onboardingDone = false after completion")
		}
	})
}

func TestStatsEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, appState := newTestServer(t)

	profile := &models.BabyProfile{
		ID:         "p1",
		Name:       "Léa",
		Gender:     models.GenderGirl,
		Birthday:   time.Now().AddDate(0, -3, 0),
		ThemeColor: models.ThemePeach,
		CreatedAt:  time.Now(),
	}
	if err := appState.SetBaby(profile); err != nil {
		t.Fatalf("SetBaby() error = %v", err)
	}

	t.Run("dashboard reports last events", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/events",
			`{"type":"sleep","startTime":"`+time.Now().Add(-1*time.Hour).Format(time.RFC3339)+`"}`)
		resp.Body.Close()

		resp = doJSON(t, "GET", server.URL+"/api/dashboard", "")
		var body struct {
			Age       string     `json:"age"`
			LastSleep *time.Time `json:"lastSleep"`
		}
		decodeBody(t, resp, &body)
		if body.Age == "" {
			t.Error("age should be present with a profile")
		}
		if body.LastSleep == nil {
			t.Error("lastSleep should be present after a sleep event")
		}
	})

	t.Run("trends counts today", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/stats/trends", "")
		var body struct {
			SleepToday int `json:"sleepToday"`
		}
		decodeBody(t, resp, &body)
		if body.SleepToday != 1 {
			t.Errorf("sleepToday = %d, want 1", body.SleepToday)
		}
	})

	t.Run("growth chart data", func(t *testing.T) {
		resp := doJSON(t, "POST", server.URL+"/api/growth",
			`{"date":"`+time.Now().Format(time.RFC3339)+`","weight":6.0}`)
		resp.Body.Close()

		resp = doJSON(t, "GET", server.URL+"/api/stats/growth?metric=weight", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var body struct {
			Metric    string `json:"metric"`
			Reference struct {
				P50 []float64 `json:"p50"`
			} `json:"reference"`
			Points []struct {
				Month float64 `json:"month"`
				Value float64 `json:"value"`
			} `json:"points"`
		}
		decodeBody(t, resp, &body)
		if body.Metric != "weight" {
			t.Errorf("metric = %q, want weight", body.Metric)
		}
		if len(body.Reference.P50) != 13 {
			t.Errorf("len(p50) = %d, want 13", len(body.Reference.P50))
		}
		if len(body.Points) != 1 || body.Points[0].Value != 6.0 {
			t.Errorf("points = %+v, want single 6.0 point", body.Points)
		}
	})

	t.Run("unknown metric rejected", func(t *testing.T) {
		resp := doJSON(t, "GET", server.URL+"/api/stats/growth?metric=bmi", "")
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestBackupExists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server, appState := newTestServer(t)

	resp := doJSON(t, "GET", server.URL+"/api/backup/exists", "")
	var body struct {
		HasBackup bool `json:"hasBackup"`
	}
	decodeBody(t, resp, &body)
	if body.HasBackup {
		t.Error("hasBackup = true on empty store")
	}

	profile := &models.BabyProfile{
		ID:         "p1",
		Name:       "Léa",
		Gender:     models.GenderGirl,
		Birthday:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		ThemeColor: models.ThemePeach,
	}
	if err := appState.SetBaby(profile); err != nil {
		t.Fatalf("SetBaby() error = %v", err)
	}

	resp = doJSON(t, "GET", server.URL+"/api/backup/exists", "")
	decodeBody(t, resp, &body)
	if !body.HasBackup {
		t.Error("hasBackup = false after profile save")
	}
}
