package handlers

import (
	"encoding/json"
	"net/http"

	"babylog/internal/models"
	"babylog/internal/service"
)

// BackupHandler serves the export/import/reset boundary
type BackupHandler struct {
	backup *service.BackupService
	state  *service.AppState
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backup *service.BackupService, state *service.AppState) *BackupHandler {
	return &BackupHandler{backup: backup, state: state}
}

// Export returns the whole-state AppData snapshot as a downloadable document
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.backup.ExportData()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export data", "", err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="babylog-backup.json"`)
	respondJSON(w, http.StatusOK, data)
}

// Import restores fields present in the posted AppData document and reloads
// the in-memory state from the store
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var data models.AppData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid backup payload", "", err)
		return
	}

	if err := h.backup.ImportData(&data); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to import data", "", err)
		return
	}

	h.state.Reload()

	respondJSON(w, http.StatusOK, map[string]interface{}{"imported": true})
}

// HasBackup reports whether restorable data exists (onboarding restore probe)
func (h *BackupHandler) HasBackup(w http.ResponseWriter, r *http.Request) {
	found, err := h.backup.HasBackup()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to check for backup", "", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"hasBackup": found})
}

// Reset wipes the store and the in-memory state
func (h *BackupHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.backup.Clear(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset data", "", err)
		return
	}

	h.state.Reload()

	respondJSON(w, http.StatusOK, map[string]interface{}{"reset": true})
}
