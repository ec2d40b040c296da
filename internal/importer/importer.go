package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/enerdev/turbine-parts/internal/tracking"
)

// requiredColumns are the CSV columns every import file must carry.
// Unknown extra columns are ignored.
var requiredColumns = []string{"part_number", "serial_number", "manufacture_date"}

// Summary reports the outcome of one import run.
type Summary struct {
	Added  int      `json:"added"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// ImportPartInstances reads part instances from CSV data and registers
// them through the tracking core, so every row is validated and
// persisted like a hand-entered one. Rows that fail validation are
// counted and reported; they do not abort the run.
func ImportPartInstances(ctx context.Context, svc *tracking.Service, r io.Reader) (*Summary, error) {
	reader := csv.NewReader(r)
	// Ragged rows are counted per-row below, not fatal for the run.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for i, record := range records[1:] {
		rowNum := i + 2 // header is row 1
		if len(record) < len(records[0]) {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: expected %d columns, got %d", rowNum, len(records[0]), len(record)))
			continue
		}

		partNumber := record[columns["part_number"]]
		serialNumber := record[columns["serial_number"]]
		manufactureDate := record[columns["manufacture_date"]]

		if _, err := svc.AddPartInstance(ctx, partNumber, serialNumber, manufactureDate); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			log.WithFields(log.Fields{
				"row":           rowNum,
				"part_number":   partNumber,
				"serial_number": serialNumber,
			}).WithError(err).Warn("Skipped import row")
			continue
		}
		summary.Added++
	}

	log.WithFields(log.Fields{
		"added":  summary.Added,
		"failed": summary.Failed,
	}).Info("Part instance import finished")
	return summary, nil
}

// mapColumns resolves required column names to their indices in the
// header row.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}
	return columns, nil
}
