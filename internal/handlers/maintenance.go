package handlers

import (
	"encoding/json"
	"net/http"
)

type createMaintenanceRequest struct {
	InstanceID  int    `json:"instance_id"`
	Description string `json:"description"`
	LogDate     string `json:"log_date"`
}

// Maintenance handles POST /api/maintenance: it attaches a maintenance
// note to a part instance.
func (a *API) Maintenance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.InstanceID == 0 {
		http.Error(w, "instance_id is required", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	entry, err := a.tracker.AddMaintenanceLog(r.Context(), req.InstanceID, req.Description, req.LogDate)
	a.mu.Unlock()
	if err != nil {
		writeTrackingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
