package stats

import (
	"fmt"
	"math"
	"strconv"

	"babylog/internal/i18n"
	"babylog/internal/models"
)

// EventDetail maps an event to its short journal summary. The switch is
// exhaustive over every event type; adding a type without a branch here is
// a bug, not a fallthrough.
func EventDetail(e models.BabyEvent, tr *i18n.Translator) string {
	switch e.Type {
	case models.EventSleep:
		if e.EndTime != nil {
			mins := int(math.Round(e.EndTime.Sub(e.StartTime).Minutes()))
			return FormatDuration(mins)
		}
		return FormatEventTime(e.StartTime)
	case models.EventBreastfeeding:
		return FormatDuration(e.DurationMinutes) + " - " + tr.T("side."+string(e.Side))
	case models.EventBottle, models.EventPumpedMilk:
		return formatAmount(e.AmountMl) + " ml"
	case models.EventDiaper:
		return tr.T("diaper." + string(e.DiaperType))
	case models.EventSolids:
		if e.AmountGrams > 0 {
			return fmt.Sprintf("%s - %sg", e.Food, formatAmount(e.AmountGrams))
		}
		return e.Food
	case models.EventWalk, models.EventBath:
		if e.DurationMinutes > 0 {
			return FormatDuration(e.DurationMinutes)
		}
		return ""
	case models.EventDoctor:
		return ""
	case models.EventVaccine:
		return e.VaccineName
	case models.EventTemperature:
		return fmt.Sprintf("%.1f°C", e.Temperature)
	case models.EventIllness:
		return e.Description
	case models.EventTreatment:
		if e.TreatmentName != "" && e.Dosage != "" {
			return e.TreatmentName + " - " + e.Dosage
		}
		if e.TreatmentName != "" {
			return e.TreatmentName
		}
		return e.Dosage
	case models.EventMood:
		return tr.T("mood." + string(e.MoodType))
	case models.EventMilestone:
		if e.MilestoneType == models.MilestoneCustom {
			return e.Description
		}
		return tr.T("milestone." + string(e.MilestoneType))
	}
	return ""
}

// formatAmount renders a measurement without trailing zeros
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
