// Package i18n provides the small translation capability the formatting
// helpers need: fixed fr/en message tables and localized month abbreviations.
// French is the default language.
package i18n

import (
	"sync"
	"time"

	"babylog/internal/models"
)

var messages = map[models.Language]map[string]string{
	models.LanguageFrench: {
		"common.today":          "Aujourd'hui",
		"common.yesterday":      "Hier",
		"age.years":             "ans",
		"age.months":            "mois",
		"age.days":              "jours",
		"side.left":             "Gauche",
		"side.right":            "Droite",
		"side.both":             "Les deux",
		"diaper.wet":            "Pipi",
		"diaper.dirty":          "Caca",
		"diaper.mixed":          "Mixte",
		"mood.happy":            "Joyeux",
		"mood.good":             "Bien",
		"mood.sad":              "Triste",
		"mood.crying":           "Pleurs",
		"milestone.first_steps": "Premiers pas",
		"milestone.sat_up":      "S'est assis",
		"milestone.first_word":  "Premier mot",
		"milestone.first_tooth": "Première dent",
	},
	models.LanguageEnglish: {
		"common.today":          "Today",
		"common.yesterday":      "Yesterday",
		"age.years":             "years",
		"age.months":            "months",
		"age.days":              "days",
		"side.left":             "Left",
		"side.right":            "Right",
		"side.both":             "Both",
		"diaper.wet":            "Wet",
		"diaper.dirty":          "Dirty",
		"diaper.mixed":          "Mixed",
		"mood.happy":            "Happy",
		"mood.good":             "Good",
		"mood.sad":              "Sad",
		"mood.crying":           "Crying",
		"milestone.first_steps": "First steps",
		"milestone.sat_up":      "Sat up",
		"milestone.first_word":  "First word",
		"milestone.first_tooth": "First tooth",
	},
}

var monthAbbrevs = map[models.Language][12]string{
	models.LanguageFrench: {
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	models.LanguageEnglish: {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
}

// Translator resolves message keys for the active language. The language can
// be switched at runtime from the settings screen, so access is guarded.
type Translator struct {
	mu   sync.RWMutex
	lang models.Language
}

// New creates a translator for the given language, falling back to the
// default for unknown codes
func New(lang models.Language) *Translator {
	if !models.ValidLanguage(lang) {
		lang = models.DefaultLanguage
	}
	return &Translator{lang: lang}
}

// SetLanguage switches the active language; unknown codes are ignored
func (t *Translator) SetLanguage(lang models.Language) {
	if !models.ValidLanguage(lang) {
		return
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
}

// Language returns the active language
func (t *Translator) Language() models.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T resolves a message key. Unknown keys return the key itself so missing
// translations are visible rather than silent.
func (t *Translator) T(key string) string {
	lang := t.Language()
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	return key
}

// MonthAbbrev returns the localized abbreviation for a month
func (t *Translator) MonthAbbrev(m time.Month) string {
	abbrevs := monthAbbrevs[t.Language()]
	return abbrevs[int(m)-1]
}
