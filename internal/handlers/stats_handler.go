package handlers

import (
	"fmt"
	"net/http"
	"time"

	"babylog/internal/chart"
	"babylog/internal/i18n"
	"babylog/internal/service"
	"babylog/internal/stats"
)

// StatsHandler serves the derived dashboard and statistics views
type StatsHandler struct {
	state    *service.AppState
	tr       *i18n.Translator
	fontPath string
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(state *service.AppState, tr *i18n.Translator, fontPath string) *StatsHandler {
	return &StatsHandler{state: state, tr: tr, fontPath: fontPath}
}

// Dashboard returns the age display and the latest sleep, breastfeeding and
// diaper timestamps
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	baby := h.state.Baby()
	events := h.state.Events()

	age := ""
	if baby != nil {
		age = stats.BabyAge(baby.Birthday, time.Now(), h.tr)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"baby":              baby,
		"age":               age,
		"lastSleep":         stats.LastEventOfType(events, "sleep"),
		"lastBreastfeeding": stats.LastEventOfType(events, "breastfeeding"),
		"lastDiaper":        stats.LastEventOfType(events, "diaper"),
	})
}

// Trends returns the 24-hour counts and 7-day averages per category
func (h *StatsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, stats.Trends(h.state.Events(), time.Now()))
}

// GrowthChartData returns the chart points and the WHO reference band for
// the requested metric
func (h *StatsHandler) GrowthChartData(w http.ResponseWriter, r *http.Request) {
	metric := stats.Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = stats.MetricWeight
	}
	if !stats.ValidMetric(metric) {
		http.Error(w, "metric must be weight, height or head", http.StatusBadRequest)
		return
	}

	baby := h.state.Baby()
	if baby == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}

	table := stats.ReferenceTable(metric, baby.Gender)
	points := stats.ChartPoints(h.state.GrowthEntries(), metric, baby.Birthday)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"metric":    metric,
		"reference": table,
		"points":    points,
	})
}

// GrowthChartPNG renders the growth chart as an image
func (h *StatsHandler) GrowthChartPNG(w http.ResponseWriter, r *http.Request) {
	metric := stats.Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = stats.MetricWeight
	}
	if !stats.ValidMetric(metric) {
		http.Error(w, "metric must be weight, height or head", http.StatusBadRequest)
		return
	}

	baby := h.state.Baby()
	if baby == nil {
		http.Error(w, "No profile", http.StatusNotFound)
		return
	}

	gc := &chart.GrowthChart{
		Table:    stats.ReferenceTable(metric, baby.Gender),
		Points:   stats.ChartPoints(h.state.GrowthEntries(), metric, baby.Birthday),
		Title:    fmt.Sprintf("%s - %s", baby.Name, metric),
		FontPath: h.fontPath,
	}

	data, err := gc.Render()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to render chart", "", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}
