package models

import (
	"strings"
	"time"
)

// EventType discriminates the BabyEvent union
type EventType string

const (
	EventSleep         EventType = "sleep"
	EventBreastfeeding EventType = "breastfeeding"
	EventBottle        EventType = "bottle"
	EventDiaper        EventType = "diaper"
	EventSolids        EventType = "solids"
	EventPumpedMilk    EventType = "pumped_milk"
	EventWalk          EventType = "walk"
	EventBath          EventType = "bath"
	EventDoctor        EventType = "doctor"
	EventVaccine       EventType = "vaccine"
	EventTemperature   EventType = "temperature"
	EventIllness       EventType = "illness"
	EventTreatment     EventType = "treatment"
	EventMood          EventType = "mood"
	EventMilestone     EventType = "milestone"
)

// EventTypes lists every event type in display order
var EventTypes = []EventType{
	EventSleep, EventBreastfeeding, EventBottle, EventDiaper, EventSolids,
	EventPumpedMilk, EventWalk, EventBath, EventDoctor, EventVaccine,
	EventTemperature, EventIllness, EventTreatment, EventMood, EventMilestone,
}

// BreastSide for breastfeeding events
type BreastSide string

const (
	SideLeft  BreastSide = "left"
	SideRight BreastSide = "right"
	SideBoth  BreastSide = "both"
)

// DiaperKind for diaper events
type DiaperKind string

const (
	DiaperWet   DiaperKind = "wet"
	DiaperDirty DiaperKind = "dirty"
	DiaperMixed DiaperKind = "mixed"
)

// MoodKind for mood events
type MoodKind string

const (
	MoodHappy  MoodKind = "happy"
	MoodGood   MoodKind = "good"
	MoodSad    MoodKind = "sad"
	MoodCrying MoodKind = "crying"
)

// MilestoneKind for milestone events
type MilestoneKind string

const (
	MilestoneFirstSteps MilestoneKind = "first_steps"
	MilestoneSatUp      MilestoneKind = "sat_up"
	MilestoneFirstWord  MilestoneKind = "first_word"
	MilestoneFirstTooth MilestoneKind = "first_tooth"
	MilestoneCustom     MilestoneKind = "custom"
)

// BabyEvent is a single timestamped care event. The union of fifteen event
// variants is kept as one flat struct matching the persisted JSON shape; the
// Type field discriminates, and Validate rejects any field that does not
// belong to the declared type. Events are immutable once saved except for
// deletion.
type BabyEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	StartTime time.Time `json:"startTime"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// sleep
	EndTime *time.Time `json:"endTime,omitempty"`
	// breastfeeding (side, minutes); walk and bath reuse the minutes field
	Side            BreastSide `json:"side,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
	// bottle, pumped_milk
	AmountMl float64 `json:"amountMl,omitempty"`
	// diaper
	DiaperType DiaperKind `json:"diaperType,omitempty"`
	// solids
	Food        string  `json:"food,omitempty"`
	AmountGrams float64 `json:"amountGrams,omitempty"`
	// vaccine
	VaccineName string `json:"vaccineName,omitempty"`
	// temperature, degrees Celsius
	Temperature float64 `json:"temperature,omitempty"`
	// illness and milestone share the free-form description
	Description string `json:"description,omitempty"`
	// treatment
	TreatmentName string `json:"treatmentName,omitempty"`
	Dosage        string `json:"dosage,omitempty"`
	// mood
	MoodType MoodKind `json:"moodType,omitempty"`
	// milestone
	MilestoneType MilestoneKind `json:"milestoneType,omitempty"`
}

// eventFieldsAllowed maps each event type to the type-specific fields it may
// populate. Anything populated outside this set fails validation.
var eventFieldsAllowed = map[EventType][]string{
	EventSleep:         {"endTime"},
	EventBreastfeeding: {"side", "durationMinutes"},
	EventBottle:        {"amountMl"},
	EventDiaper:        {"diaperType"},
	EventSolids:        {"food", "amountGrams"},
	EventPumpedMilk:    {"amountMl"},
	EventWalk:          {"durationMinutes"},
	EventBath:          {"durationMinutes"},
	EventDoctor:        {},
	EventVaccine:       {"vaccineName"},
	EventTemperature:   {"temperature"},
	EventIllness:       {"description"},
	EventTreatment:     {"treatmentName", "dosage"},
	EventMood:          {"moodType"},
	EventMilestone:     {"milestoneType", "description"},
}

// populatedFields lists the type-specific fields that carry a value
func (e *BabyEvent) populatedFields() []string {
	var fields []string
	if e.EndTime != nil {
		fields = append(fields, "endTime")
	}
	if e.Side != "" {
		fields = append(fields, "side")
	}
	if e.DurationMinutes != 0 {
		fields = append(fields, "durationMinutes")
	}
	if e.AmountMl != 0 {
		fields = append(fields, "amountMl")
	}
	if e.DiaperType != "" {
		fields = append(fields, "diaperType")
	}
	if e.Food != "" {
		fields = append(fields, "food")
	}
	if e.AmountGrams != 0 {
		fields = append(fields, "amountGrams")
	}
	if e.VaccineName != "" {
		fields = append(fields, "vaccineName")
	}
	if e.Temperature != 0 {
		fields = append(fields, "temperature")
	}
	if e.Description != "" {
		fields = append(fields, "description")
	}
	if e.TreatmentName != "" {
		fields = append(fields, "treatmentName")
	}
	if e.Dosage != "" {
		fields = append(fields, "dosage")
	}
	if e.MoodType != "" {
		fields = append(fields, "moodType")
	}
	if e.MilestoneType != "" {
		fields = append(fields, "milestoneType")
	}
	return fields
}

// Validate checks the per-type field contract: required fields must be
// present and valid, and fields belonging to other event types must be empty.
func (e *BabyEvent) Validate() error {
	allowed, ok := eventFieldsAllowed[e.Type]
	if !ok {
		return ValidationError{Field: "type", Message: "unknown event type"}
	}
	if e.StartTime.IsZero() {
		return ValidationError{Field: "startTime", Message: "start time is required"}
	}
	for _, field := range e.populatedFields() {
		permitted := false
		for _, a := range allowed {
			if a == field {
				permitted = true
				break
			}
		}
		if !permitted {
			return ValidationError{Field: field, Message: "field not applicable to " + string(e.Type) + " events"}
		}
	}

	switch e.Type {
	case EventSleep:
		if e.EndTime != nil && e.EndTime.Before(e.StartTime) {
			return ValidationError{Field: "endTime", Message: "end time must not precede start time"}
		}
	case EventBreastfeeding:
		if e.Side != SideLeft && e.Side != SideRight && e.Side != SideBoth {
			return ValidationError{Field: "side", Message: "side must be left, right or both"}
		}
		if e.DurationMinutes <= 0 {
			return ValidationError{Field: "durationMinutes", Message: "duration must be greater than zero"}
		}
	case EventBottle, EventPumpedMilk:
		if e.AmountMl <= 0 {
			return ValidationError{Field: "amountMl", Message: "amount must be greater than zero"}
		}
	case EventDiaper:
		if e.DiaperType != DiaperWet && e.DiaperType != DiaperDirty && e.DiaperType != DiaperMixed {
			return ValidationError{Field: "diaperType", Message: "diaper type must be wet, dirty or mixed"}
		}
	case EventSolids:
		if strings.TrimSpace(e.Food) == "" {
			return ValidationError{Field: "food", Message: "food is required"}
		}
		if e.AmountGrams < 0 {
			return ValidationError{Field: "amountGrams", Message: "amount must not be negative"}
		}
	case EventWalk, EventBath:
		if e.DurationMinutes < 0 {
			return ValidationError{Field: "durationMinutes", Message: "duration must not be negative"}
		}
	case EventDoctor:
		// only the common fields
	case EventVaccine:
		// vaccine name is optional
	case EventTemperature:
		if e.Temperature <= 0 {
			return ValidationError{Field: "temperature", Message: "temperature must be greater than zero"}
		}
	case EventIllness, EventTreatment:
		// all type-specific fields optional
	case EventMood:
		if e.MoodType != MoodHappy && e.MoodType != MoodGood && e.MoodType != MoodSad && e.MoodType != MoodCrying {
			return ValidationError{Field: "moodType", Message: "mood must be happy, good, sad or crying"}
		}
	case EventMilestone:
		switch e.MilestoneType {
		case MilestoneFirstSteps, MilestoneSatUp, MilestoneFirstWord, MilestoneFirstTooth:
		case MilestoneCustom:
			if strings.TrimSpace(e.Description) == "" {
				return ValidationError{Field: "description", Message: "description is required for custom milestones"}
			}
		default:
			return ValidationError{Field: "milestoneType", Message: "unknown milestone type"}
		}
	}
	return nil
}
