package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type createPartMasterRequest struct {
	PartNumber   string `json:"part_number"`
	Description  string `json:"description"`
	Manufacturer string `json:"manufacturer"`
}

type createPartInstanceRequest struct {
	PartNumber      string `json:"part_number"`
	SerialNumber    string `json:"serial_number"`
	ManufactureDate string `json:"manufacture_date"`
}

type installRequest struct {
	PartSerialNumber    string `json:"part_serial_number"`
	TurbineSerialNumber string `json:"turbine_serial_number"`
	InstallationDate    string `json:"installation_date"`
}

type removeRequest struct {
	PartSerialNumber       string   `json:"part_serial_number"`
	RemovalDate            string   `json:"removal_date"`
	TurbineHoursAtRemoval  *float64 `json:"turbine_hours_at_removal"`
	TurbineStartsAtRemoval *int     `json:"turbine_starts_at_removal"`
}

// PartMasters handles /api/part-masters: GET lists the catalog, POST
// adds a part type.
func (a *API) PartMasters(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.mu.Lock()
		writeJSON(w, http.StatusOK, a.tracker.PartMasters())
		a.mu.Unlock()
	case http.MethodPost:
		var req createPartMasterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PartNumber == "" {
			http.Error(w, "part_number is required", http.StatusBadRequest)
			return
		}

		a.mu.Lock()
		master, err := a.tracker.AddPartMaster(r.Context(), req.PartNumber, req.Description, req.Manufacturer)
		a.mu.Unlock()
		if err != nil {
			writeTrackingError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, master)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Parts handles /api/parts: GET lists part instances, POST registers
// one physical unit.
func (a *API) Parts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.mu.Lock()
		writeJSON(w, http.StatusOK, a.tracker.PartInstances())
		a.mu.Unlock()
	case http.MethodPost:
		var req createPartInstanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PartNumber == "" || req.SerialNumber == "" {
			http.Error(w, "part_number and serial_number are required", http.StatusBadRequest)
			return
		}

		a.mu.Lock()
		instance, err := a.tracker.AddPartInstance(r.Context(), req.PartNumber, req.SerialNumber, req.ManufactureDate)
		a.mu.Unlock()
		if err != nil {
			writeTrackingError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, instance)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// PartBySerial handles /api/parts/{serial} and the /lifecycle and
// /maintenance sub-resources.
func (a *API) PartBySerial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/parts/")
	serial, sub, _ := strings.Cut(rest, "/")
	if serial == "" {
		http.Error(w, "part serial number is required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	instance, err := a.tracker.GetPartBySerial(serial)
	if err != nil {
		writeTrackingError(w, err)
		return
	}

	switch sub {
	case "":
		writeJSON(w, http.StatusOK, instance)
	case "lifecycle":
		lifecycle, err := a.tracker.PartLifecycle(instance.InstanceID)
		if err != nil {
			writeTrackingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, lifecycle)
	case "maintenance":
		writeJSON(w, http.StatusOK, a.tracker.MaintenanceLogs(instance.InstanceID))
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// Install handles POST /api/install: it opens an installation record
// linking a part instance to a turbine.
func (a *API) Install(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req installRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PartSerialNumber == "" || req.TurbineSerialNumber == "" {
		http.Error(w, "part_serial_number and turbine_serial_number are required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	record, err := a.tracker.InstallPart(r.Context(), req.PartSerialNumber, req.TurbineSerialNumber, req.InstallationDate)
	a.mu.Unlock()
	if err != nil {
		writeTrackingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Remove handles POST /api/remove: it closes the part's active
// installation record, optionally updating the turbine's counters.
func (a *API) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PartSerialNumber == "" {
		http.Error(w, "part_serial_number is required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	record, err := a.tracker.RemovePart(r.Context(), req.PartSerialNumber, req.RemovalDate, req.TurbineHoursAtRemoval, req.TurbineStartsAtRemoval)
	a.mu.Unlock()
	if err != nil {
		writeTrackingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
