package models

// Language is a UI locale code
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used when no preference is stored
const DefaultLanguage = LanguageFrench

// ValidLanguage reports whether lang is a supported locale
func ValidLanguage(lang Language) bool {
	return lang == LanguageFrench || lang == LanguageEnglish
}

// ColorScheme is the dark/light preference
type ColorScheme string

const (
	SchemeDark   ColorScheme = "dark"
	SchemeLight  ColorScheme = "light"
	SchemeSystem ColorScheme = "system"
)

// AppData is the whole-state backup bundle. Import is field-partial: nil
// slices and pointers mean "leave the stored value untouched", so a document
// carrying only events overwrites only the events collection.
type AppData struct {
	Baby                *BabyProfile  `json:"baby"`
	Events              []BabyEvent   `json:"events"`
	GrowthEntries       []GrowthEntry `json:"growthEntries"`
	OnboardingCompleted *bool         `json:"onboardingCompleted,omitempty"`
	Language            Language      `json:"language,omitempty"`
}
