// Package stats derives presentation values from the raw collections: age
// and date formatting, per-event detail strings, rolling trend aggregates
// and growth chart data. Nothing here performs I/O or persists derived
// state; every view recomputes from the raw events and entries.
package stats

import (
	"fmt"
	"time"

	"babylog/internal/i18n"
)

// BabyAge renders the elapsed time since birth in the largest whole unit:
// years when at least one full year has passed, then months, then days.
// Units are truncated, never rounded up.
func BabyAge(birthday, now time.Time, tr *i18n.Translator) string {
	if birthday.IsZero() || birthday.After(now) {
		return ""
	}

	months := monthsBetween(birthday, now)
	years := months / 12
	days := daysBetween(birthday, now)

	if years >= 1 {
		return fmt.Sprintf("%d %s", years, tr.T("age.years"))
	}
	if months >= 1 {
		return fmt.Sprintf("%d %s", months, tr.T("age.months"))
	}
	return fmt.Sprintf("%d %s", days, tr.T("age.days"))
}

// daysBetween counts full 24-hour periods between two instants
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// monthsBetween counts full calendar months between two instants
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	// Back off while the anchor day of the starting month has not been
	// reached yet.
	for months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}
