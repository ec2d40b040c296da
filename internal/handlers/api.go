package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/enerdev/turbine-parts/internal/tracking"
)

// API exposes the tracking core over HTTP. The mutex serializes all
// access to the core, which assumes a single writer.
type API struct {
	mu      sync.Mutex
	tracker *tracking.Service
}

// NewAPI creates a new API over the given tracking service.
func NewAPI(tracker *tracking.Service) *API {
	return &API{tracker: tracker}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeTrackingError maps core failures onto HTTP status codes:
// resolution failures to 404, state-machine and uniqueness violations
// to 409, anything else (persistence) to 500.
func writeTrackingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrPartNotFound),
		errors.Is(err, tracking.ErrTurbineNotFound),
		errors.Is(err, tracking.ErrInstanceNotFound),
		errors.Is(err, tracking.ErrPartMasterNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, tracking.ErrAlreadyInstalled),
		errors.Is(err, tracking.ErrNoActiveInstallation),
		errors.Is(err, tracking.ErrDuplicateSerialNumber),
		errors.Is(err, tracking.ErrDuplicatePartNumber):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.WithError(err).Error("Tracking operation failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Health responds to liveness probes.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
