package repository

import "babylog/internal/models"

// EventRepository stores the event collection as a single JSON document,
// newest first. The prepend-on-save order is a persisted invariant that the
// journal and dashboard rely on.
type EventRepository struct {
	state *StateRepository
}

// NewEventRepository creates a new event repository
func NewEventRepository(state *StateRepository) *EventRepository {
	return &EventRepository{state: state}
}

// Save prepends the event and writes the collection back
func (r *EventRepository) Save(event models.BabyEvent) error {
	events, err := r.All()
	if err != nil {
		return err
	}
	events = append([]models.BabyEvent{event}, events...)
	return r.state.SetJSON(KeyBabyEvents, events)
}

// All returns every stored event, newest first. An empty store yields an
// empty slice, not an error.
func (r *EventRepository) All() ([]models.BabyEvent, error) {
	var events []models.BabyEvent
	if _, err := r.state.GetJSON(KeyBabyEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.BabyEvent{}
	}
	return events, nil
}

// Delete removes the event matching id. Deleting an unknown id is a no-op.
func (r *EventRepository) Delete(id string) error {
	events, err := r.All()
	if err != nil {
		return err
	}
	filtered := events[:0]
	for _, e := range events {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return r.state.SetJSON(KeyBabyEvents, filtered)
}

// ReplaceAll overwrites the whole collection; used by import
func (r *EventRepository) ReplaceAll(events []models.BabyEvent) error {
	return r.state.SetJSON(KeyBabyEvents, events)
}
