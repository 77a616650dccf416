package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"babylog/internal/i18n"
	"babylog/internal/models"
	"babylog/internal/service"
	"babylog/internal/stats"
)

// EventHandler serves the care event journal
type EventHandler struct {
	state *service.AppState
	tr    *i18n.Translator
}

// NewEventHandler creates a new event handler
func NewEventHandler(state *service.AppState, tr *i18n.Translator) *EventHandler {
	return &EventHandler{state: state, tr: tr}
}

// eventView pairs an event with its derived journal strings
type eventView struct {
	models.BabyEvent
	Detail    string `json:"detail"`
	TimeLabel string `json:"timeLabel"`
	DateLabel string `json:"dateLabel"`
}

// ListEvents returns events newest first, optionally filtered by ?type=
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.state.Events()

	if filter := r.URL.Query().Get("type"); filter != "" {
		filtered := make([]models.BabyEvent, 0, len(events))
		for _, e := range events {
			if e.Type == models.EventType(filter) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	now := time.Now()
	views := make([]eventView, len(events))
	for i, e := range events {
		views[i] = eventView{
			BabyEvent: e,
			Detail:    stats.EventDetail(e, h.tr),
			TimeLabel: stats.FormatEventTime(e.StartTime),
			DateLabel: stats.FormatEventDate(e.StartTime, now, h.tr),
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"events": views})
}

// CreateEvent validates and stores a new event
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.BabyEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event payload", "", err)
		return
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if err := event.Validate(); err != nil {
		respondWithValidationError(w, err, "Failed to save event")
		return
	}

	if err := h.state.AddEvent(event); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save event", "", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"event": event})
}

// DeleteEvent removes an event by id. An unknown id still succeeds.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing event id", "", nil)
		return
	}

	if err := h.state.RemoveEvent(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete event", "", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
