package models

import (
	"strings"
	"time"
)

// Gender of the baby
type Gender string

const (
	GenderGirl Gender = "girl"
	GenderBoy  Gender = "boy"
)

// ThemeColor is the UI accent color chosen for the profile
type ThemeColor string

const (
	ThemePeach ThemeColor = "peach"
	ThemePink  ThemeColor = "pink"
	ThemeBlue  ThemeColor = "blue"
)

// DefaultThemeColor is used before a profile exists
const DefaultThemeColor = ThemePeach

// BabyProfile is the singleton profile created during onboarding.
// Height and Weight are an optional snapshot taken at creation; ongoing
// measurements live in GrowthEntry records.
type BabyProfile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Gender     Gender     `json:"gender"`
	Birthday   time.Time  `json:"birthday"`
	PhotoURI   string     `json:"photoUri,omitempty"`
	ThemeColor ThemeColor `json:"themeColor"`
	Height     float64    `json:"height,omitempty"` // cm
	Weight     float64    `json:"weight,omitempty"` // kg
	CreatedAt  time.Time  `json:"createdAt"`
}

// Validate checks the profile fields required at onboarding
func (p *BabyProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if p.Gender != GenderGirl && p.Gender != GenderBoy {
		return ValidationError{Field: "gender", Message: "gender must be girl or boy"}
	}
	if p.Birthday.IsZero() {
		return ValidationError{Field: "birthday", Message: "birthday is required"}
	}
	switch p.ThemeColor {
	case ThemePeach, ThemePink, ThemeBlue:
	default:
		return ValidationError{Field: "themeColor", Message: "unknown theme color"}
	}
	return nil
}
