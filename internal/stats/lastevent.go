package stats

import (
	"time"

	"babylog/internal/models"
)

// LastEventOfType returns the start time of the most recent event of the
// given type, or nil when none exists. Selection is by latest start time
// rather than list position, so a collection whose newest-first order was
// disturbed by a merged import still yields the true latest event.
func LastEventOfType(events []models.BabyEvent, typ models.EventType) *time.Time {
	var last *time.Time
	for i := range events {
		if events[i].Type != typ {
			continue
		}
		if last == nil || events[i].StartTime.After(*last) {
			t := events[i].StartTime
			last = &t
		}
	}
	return last
}
