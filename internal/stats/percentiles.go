package stats

import "babylog/internal/models"

// Metric selects which growth measurement to chart
type Metric string

const (
	MetricWeight Metric = "weight"
	MetricHeight Metric = "height"
	MetricHead   Metric = "head"
)

// ValidMetric reports whether m names a chartable measurement
func ValidMetric(m Metric) bool {
	return m == MetricWeight || m == MetricHeight || m == MetricHead
}

// ReferenceMonths is the number of monthly samples in each reference curve,
// covering birth through 12 months.
const ReferenceMonths = 13

// PercentileTable holds one WHO reference band: the 3rd, 50th and 97th
// percentile curves sampled at monthly intervals from birth to 12 months.
type PercentileTable struct {
	P3  [ReferenceMonths]float64 `json:"p3"`
	P50 [ReferenceMonths]float64 `json:"p50"`
	P97 [ReferenceMonths]float64 `json:"p97"`
}

// Simplified WHO growth reference curves (3rd, 50th, 97th percentiles).
// Weight in kg, height and head circumference in cm.
var (
	whoWeightBoys = PercentileTable{
		P3:  [ReferenceMonths]float64{2.5, 3.4, 4.4, 5.1, 5.6, 6.1, 6.4, 6.7, 7.0, 7.2, 7.5, 7.7, 7.8},
		P50: [ReferenceMonths]float64{3.3, 4.5, 5.6, 6.4, 7.0, 7.5, 7.9, 8.3, 8.6, 8.9, 9.2, 9.4, 9.6},
		P97: [ReferenceMonths]float64{4.3, 5.8, 7.1, 8.0, 8.7, 9.3, 9.8, 10.3, 10.7, 11.0, 11.4, 11.7, 12.0},
	}
	whoWeightGirls = PercentileTable{
		P3:  [ReferenceMonths]float64{2.4, 3.2, 4.0, 4.6, 5.1, 5.5, 5.8, 6.1, 6.3, 6.6, 6.8, 7.0, 7.1},
		P50: [ReferenceMonths]float64{3.2, 4.2, 5.1, 5.8, 6.4, 6.9, 7.3, 7.6, 8.0, 8.2, 8.5, 8.7, 8.9},
		P97: [ReferenceMonths]float64{4.2, 5.5, 6.6, 7.4, 8.1, 8.7, 9.2, 9.6, 10.0, 10.4, 10.7, 11.0, 11.3},
	}
	whoHeightBoys = PercentileTable{
		P3:  [ReferenceMonths]float64{46.3, 51.1, 54.7, 57.6, 60.0, 62.0, 63.8, 65.4, 66.8, 68.2, 69.5, 70.7, 71.8},
		P50: [ReferenceMonths]float64{49.9, 54.7, 58.4, 61.4, 63.9, 65.9, 67.6, 69.2, 70.6, 72.0, 73.3, 74.5, 75.7},
		P97: [ReferenceMonths]float64{53.4, 58.4, 62.2, 65.3, 67.8, 69.9, 71.6, 73.2, 74.7, 76.0, 77.3, 78.5, 79.7},
	}
	whoHeightGirls = PercentileTable{
		P3:  [ReferenceMonths]float64{45.6, 50.0, 53.2, 55.8, 58.0, 59.9, 61.5, 63.0, 64.3, 65.6, 66.8, 68.0, 69.1},
		P50: [ReferenceMonths]float64{49.1, 53.7, 57.1, 59.8, 62.1, 64.0, 65.7, 67.3, 68.7, 70.1, 71.5, 72.8, 74.0},
		P97: [ReferenceMonths]float64{52.7, 57.4, 60.9, 63.8, 66.2, 68.1, 70.0, 71.6, 73.2, 74.7, 76.1, 77.5, 78.9},
	}
	whoHeadBoys = PercentileTable{
		P3:  [ReferenceMonths]float64{32.1, 35.1, 37.0, 38.3, 39.4, 40.3, 41.0, 41.7, 42.2, 42.7, 43.2, 43.6, 44.0},
		P50: [ReferenceMonths]float64{34.5, 37.3, 39.1, 40.5, 41.6, 42.6, 43.3, 44.0, 44.5, 45.0, 45.4, 45.8, 46.1},
		P97: [ReferenceMonths]float64{36.9, 39.5, 41.3, 42.7, 43.9, 44.8, 45.6, 46.3, 46.9, 47.4, 47.8, 48.2, 48.5},
	}
	whoHeadGirls = PercentileTable{
		P3:  [ReferenceMonths]float64{31.7, 34.3, 36.0, 37.2, 38.2, 39.0, 39.7, 40.4, 40.9, 41.3, 41.7, 42.1, 42.4},
		P50: [ReferenceMonths]float64{33.9, 36.5, 38.3, 39.5, 40.6, 41.5, 42.2, 42.8, 43.4, 43.8, 44.2, 44.6, 44.9},
		P97: [ReferenceMonths]float64{36.1, 38.8, 40.5, 41.9, 43.0, 43.9, 44.7, 45.3, 45.9, 46.4, 46.8, 47.2, 47.5},
	}
)

// ReferenceTable selects the WHO band for a metric and gender
func ReferenceTable(metric Metric, gender models.Gender) PercentileTable {
	boy := gender == models.GenderBoy
	switch metric {
	case MetricWeight:
		if boy {
			return whoWeightBoys
		}
		return whoWeightGirls
	case MetricHeight:
		if boy {
			return whoHeightBoys
		}
		return whoHeightGirls
	default:
		if boy {
			return whoHeadBoys
		}
		return whoHeadGirls
	}
}
