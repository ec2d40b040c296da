package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type createTurbineRequest struct {
	SerialNumber       string  `json:"serial_number"`
	FrameType          string  `json:"frame_type"`
	Location           string  `json:"location"`
	CurrentTotalHours  float64 `json:"current_total_hours"`
	CurrentTotalStarts int     `json:"current_total_starts"`
}

// Turbines handles /api/turbines: GET lists all turbines, POST
// registers a new one.
func (a *API) Turbines(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// Encode under the lock: the slice elements are mutated in
		// place by removals and telemetry.
		a.mu.Lock()
		writeJSON(w, http.StatusOK, a.tracker.Turbines())
		a.mu.Unlock()
	case http.MethodPost:
		var req createTurbineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.SerialNumber == "" {
			http.Error(w, "serial_number is required", http.StatusBadRequest)
			return
		}

		a.mu.Lock()
		turbine, err := a.tracker.AddTurbine(r.Context(), req.SerialNumber, req.FrameType, req.Location, req.CurrentTotalHours, req.CurrentTotalStarts)
		a.mu.Unlock()
		if err != nil {
			writeTrackingError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, turbine)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TurbineBySerial handles /api/turbines/{serial} and its sub-resources
// /parts (currently installed part instances) and /history (all
// installation records, open and closed).
func (a *API) TurbineBySerial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/turbines/")
	serial, sub, _ := strings.Cut(rest, "/")
	if serial == "" {
		http.Error(w, "turbine serial number is required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	turbine, err := a.tracker.GetTurbineBySerial(serial)
	if err != nil {
		writeTrackingError(w, err)
		return
	}

	switch sub {
	case "":
		writeJSON(w, http.StatusOK, turbine)
	case "parts":
		writeJSON(w, http.StatusOK, a.tracker.InstalledParts(turbine.TurbineID))
	case "history":
		writeJSON(w, http.StatusOK, a.tracker.TurbineHistory(turbine.TurbineID))
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}
