package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/enerdev/turbine-parts/internal/models"
)

// ApplyTelemetry applies a counter reading through the core under the
// API's writer lock. The MQTT ingest shares this path so HTTP and
// broker traffic never race on the document.
func (a *API) ApplyTelemetry(ctx context.Context, reading models.OperatingTelemetry) (models.Turbine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tracker.ApplyTelemetry(ctx, reading)
}

// Telemetry handles POST /api/telemetry: a counter reading pushed over
// HTTP instead of the broker.
func (a *API) Telemetry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var reading models.OperatingTelemetry
	if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if reading.TurbineSerialNumber == "" {
		http.Error(w, "turbine_serial_number is required", http.StatusBadRequest)
		return
	}

	turbine, err := a.ApplyTelemetry(r.Context(), reading)
	if err != nil {
		writeTrackingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, turbine)
}
