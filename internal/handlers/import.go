package handlers

import (
	"net/http"

	"github.com/enerdev/turbine-parts/internal/importer"
)

// ImportParts handles POST /api/import/parts. The request body is a
// CSV file with part_number, serial_number and manufacture_date
// columns; each row becomes a part instance.
func (a *API) ImportParts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	summary, err := importer.ImportPartInstances(r.Context(), a.tracker, r.Body)
	a.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
