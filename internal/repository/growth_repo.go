package repository

import (
	"sort"

	"babylog/internal/models"
)

// GrowthRepository stores growth entries as a single JSON document sorted
// ascending by date. The sort is mandatory: chart and trend derivations
// assume ascending order.
type GrowthRepository struct {
	state *StateRepository
}

// NewGrowthRepository creates a new growth repository
func NewGrowthRepository(state *StateRepository) *GrowthRepository {
	return &GrowthRepository{state: state}
}

// Save appends the entry, re-sorts by date and writes the collection back
func (r *GrowthRepository) Save(entry models.GrowthEntry) error {
	entries, err := r.All()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return r.state.SetJSON(KeyGrowthEntries, entries)
}

// All returns every stored entry, ascending by date
func (r *GrowthRepository) All() ([]models.GrowthEntry, error) {
	var entries []models.GrowthEntry
	if _, err := r.state.GetJSON(KeyGrowthEntries, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.GrowthEntry{}
	}
	return entries, nil
}

// ReplaceAll overwrites the whole collection; used by import
func (r *GrowthRepository) ReplaceAll(entries []models.GrowthEntry) error {
	return r.state.SetJSON(KeyGrowthEntries, entries)
}
