package tracking

import (
	"context"

	"github.com/enerdev/turbine-parts/internal/models"
)

// InstallPart opens a new installation record linking a part instance
// to a turbine. Any open record for the instance blocks the install,
// regardless of which turbine it points to: a part cannot be installed
// twice, not even into the turbine it is already in. The installation
// date defaults to today, and the turbine's current counters are
// stamped on the record.
func (s *Service) InstallPart(ctx context.Context, partSerialNumber, turbineSerialNumber, installationDate string) (models.InstallationRecord, error) {
	instance := findInstanceBySerial(s.doc, partSerialNumber)
	if instance == nil {
		return models.InstallationRecord{}, ErrPartNotFound
	}
	turbine := findTurbineBySerial(s.doc, turbineSerialNumber)
	if turbine == nil {
		return models.InstallationRecord{}, ErrTurbineNotFound
	}
	if findOpenRecord(s.doc, instance.InstanceID) != nil {
		return models.InstallationRecord{}, ErrAlreadyInstalled
	}

	if installationDate == "" {
		installationDate = s.today()
	}
	hours := turbine.CurrentTotalHours
	starts := turbine.CurrentTotalStarts

	record := models.InstallationRecord{
		InstallationID:         nextID(s.doc.InstallationRecords, func(r models.InstallationRecord) int { return r.InstallationID }),
		InstanceID:             instance.InstanceID,
		TurbineID:              turbine.TurbineID,
		InstallationDate:       installationDate,
		TurbineHoursAtInstall:  &hours,
		TurbineStartsAtInstall: &starts,
	}
	s.doc.InstallationRecords = append(s.doc.InstallationRecords, record)
	if err := s.persist(ctx); err != nil {
		s.doc.InstallationRecords = s.doc.InstallationRecords[:len(s.doc.InstallationRecords)-1]
		return models.InstallationRecord{}, err
	}
	return record, nil
}

// RemovePart closes the active installation record for a part instance.
// Should corrupted data ever hold more than one open record, only the
// first in insertion order is closed. When counter readings are
// supplied they update the turbine in place and are stamped on the
// record. The record itself is never deleted; history is append-only.
func (s *Service) RemovePart(ctx context.Context, partSerialNumber, removalDate string, hoursAtRemoval *float64, startsAtRemoval *int) (models.InstallationRecord, error) {
	instance := findInstanceBySerial(s.doc, partSerialNumber)
	if instance == nil {
		return models.InstallationRecord{}, ErrPartNotFound
	}
	record := findOpenRecord(s.doc, instance.InstanceID)
	if record == nil {
		return models.InstallationRecord{}, ErrNoActiveInstallation
	}

	if removalDate == "" {
		removalDate = s.today()
	}

	turbine := findTurbineByID(s.doc, record.TurbineID)
	prevRecord := *record
	var prevTurbine models.Turbine
	if turbine != nil {
		prevTurbine = *turbine
	}

	if turbine != nil {
		if hoursAtRemoval != nil {
			turbine.CurrentTotalHours = *hoursAtRemoval
		}
		if startsAtRemoval != nil {
			turbine.CurrentTotalStarts = *startsAtRemoval
		}
		hours := turbine.CurrentTotalHours
		starts := turbine.CurrentTotalStarts
		record.TurbineHoursAtRemoval = &hours
		record.TurbineStartsAtRemoval = &starts
	}
	record.RemovalDate = removalDate

	if err := s.persist(ctx); err != nil {
		*record = prevRecord
		if turbine != nil {
			*turbine = prevTurbine
		}
		return models.InstallationRecord{}, err
	}
	return *record, nil
}

// ApplyTelemetry updates a turbine's cumulative hour and start counters
// from a collector reading. The values are passed through unchanged.
func (s *Service) ApplyTelemetry(ctx context.Context, reading models.OperatingTelemetry) (models.Turbine, error) {
	turbine := findTurbineBySerial(s.doc, reading.TurbineSerialNumber)
	if turbine == nil {
		return models.Turbine{}, ErrTurbineNotFound
	}

	prev := *turbine
	turbine.CurrentTotalHours = reading.Hours
	turbine.CurrentTotalStarts = reading.Starts
	if err := s.persist(ctx); err != nil {
		*turbine = prev
		return models.Turbine{}, err
	}
	return *turbine, nil
}
