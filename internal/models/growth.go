package models

import "time"

// GrowthEntry is a dated anthropometric measurement. Only the date part of
// Date is meaningful. At least one of the three measurements must be present;
// pointers distinguish "not measured" from a literal zero.
type GrowthEntry struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	Weight            *float64  `json:"weight,omitempty"`            // kg
	Height            *float64  `json:"height,omitempty"`            // cm
	HeadCircumference *float64  `json:"headCircumference,omitempty"` // cm
	CreatedAt         time.Time `json:"createdAt"`
}

// Validate requires a date and at least one measurement
func (g *GrowthEntry) Validate() error {
	if g.Date.IsZero() {
		return ValidationError{Field: "date", Message: "date is required"}
	}
	if g.Weight == nil && g.Height == nil && g.HeadCircumference == nil {
		return ValidationError{Field: "measurements", Message: "at least one of weight, height or head circumference is required"}
	}
	if g.Weight != nil && *g.Weight <= 0 {
		return ValidationError{Field: "weight", Message: "weight must be greater than zero"}
	}
	if g.Height != nil && *g.Height <= 0 {
		return ValidationError{Field: "height", Message: "height must be greater than zero"}
	}
	if g.HeadCircumference != nil && *g.HeadCircumference <= 0 {
		return ValidationError{Field: "headCircumference", Message: "head circumference must be greater than zero"}
	}
	return nil
}
