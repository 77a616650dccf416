package stats

import (
	"fmt"
	"time"

	"babylog/internal/i18n"
)

// FormatEventTime renders a timestamp as HH:mm
func FormatEventTime(ts time.Time) string {
	return ts.Format("15:04")
}

// FormatEventDate renders a calendar day relative to now: "today" and
// "yesterday" in the active language, otherwise "dd MMM yyyy" with a
// localized month abbreviation.
func FormatEventDate(ts, now time.Time, tr *i18n.Translator) string {
	if sameDay(ts, now) {
		return tr.T("common.today")
	}
	if sameDay(ts, now.AddDate(0, 0, -1)) {
		return tr.T("common.yesterday")
	}
	return fmt.Sprintf("%02d %s %d", ts.Day(), tr.MonthAbbrev(ts.Month()), ts.Year())
}

// FormatDuration renders minutes as "XhYY" when hours and minutes are both
// present (minutes zero-padded), "Xh" for whole hours, "Ymin" otherwise.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh%02d", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dmin", m)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
