package stats

import (
	"sort"
	"time"

	"babylog/internal/models"
)

// daysPerMonth is the mean Gregorian month length. Chart positions use this
// deliberate approximation rather than calendar-accurate months.
const daysPerMonth = 30.44

// ChartPoint is one observed measurement positioned on the chart's month axis
type ChartPoint struct {
	Month float64 `json:"month"`
	Value float64 `json:"value"`
}

// ChartPoints converts growth entries into chart points for one metric:
// entries missing the metric are skipped, the month position is the elapsed
// days since birth divided by the mean month length (clamped at zero), and
// the result is sorted ascending by month.
func ChartPoints(entries []models.GrowthEntry, metric Metric, birthday time.Time) []ChartPoint {
	points := make([]ChartPoint, 0, len(entries))
	for _, e := range entries {
		var value *float64
		switch metric {
		case MetricWeight:
			value = e.Weight
		case MetricHeight:
			value = e.Height
		default:
			value = e.HeadCircumference
		}
		if value == nil {
			continue
		}
		month := e.Date.Sub(birthday).Hours() / 24 / daysPerMonth
		if month < 0 {
			month = 0
		}
		points = append(points, ChartPoint{Month: month, Value: *value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})
	return points
}
