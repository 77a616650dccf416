package stats

import (
	"time"

	"babylog/internal/models"
)

// TrendStats holds rolling activity counts per semantic category: events in
// the last 24 hours and a whole-unit daily average over the last 7 days.
type TrendStats struct {
	SleepToday    int `json:"sleepToday"`
	FeedToday     int `json:"feedToday"`
	DiaperToday   int `json:"diaperToday"`
	SleepWeekAvg  int `json:"sleepWeekAvg"`
	FeedWeekAvg   int `json:"feedWeekAvg"`
	DiaperWeekAvg int `json:"diaperWeekAvg"`
}

// isFeeding groups breastfeeding, bottle and solids into one category
func isFeeding(t models.EventType) bool {
	return t == models.EventBreastfeeding || t == models.EventBottle || t == models.EventSolids
}

// Trends computes the 24-hour counts and the floored 7-day averages for the
// sleep, feeding and diaper categories.
func Trends(events []models.BabyEvent, now time.Time) TrendStats {
	last24h := now.Add(-24 * time.Hour)
	last7d := now.Add(-7 * 24 * time.Hour)

	var ts TrendStats
	var sleepWeek, feedWeek, diaperWeek int
	for _, e := range events {
		if e.StartTime.Before(last7d) {
			continue
		}
		today := !e.StartTime.Before(last24h)
		switch {
		case e.Type == models.EventSleep:
			sleepWeek++
			if today {
				ts.SleepToday++
			}
		case isFeeding(e.Type):
			feedWeek++
			if today {
				ts.FeedToday++
			}
		case e.Type == models.EventDiaper:
			diaperWeek++
			if today {
				ts.DiaperToday++
			}
		}
	}

	ts.SleepWeekAvg = sleepWeek / 7
	ts.FeedWeekAvg = feedWeek / 7
	ts.DiaperWeekAvg = diaperWeek / 7
	return ts
}
