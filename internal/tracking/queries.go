package tracking

import "github.com/enerdev/turbine-parts/internal/models"

// Lifecycle is the full history of one part instance: the instance
// itself, its catalog entry when resolvable, and every installation
// episode and maintenance note in insertion order.
type Lifecycle struct {
	Instance      models.PartInstance         `json:"part_details"`
	Master        *models.PartMaster          `json:"part_master,omitempty"`
	Installations []models.InstallationRecord `json:"installation_history"`
	Maintenance   []models.MaintenanceLog     `json:"maintenance_log"`
}

// InstalledParts returns the part instances currently installed in a
// turbine: those with an open installation record pointing at it.
func (s *Service) InstalledParts(turbineID int) []models.PartInstance {
	installedIDs := make(map[int]bool)
	for i := range s.doc.InstallationRecords {
		r := &s.doc.InstallationRecords[i]
		if r.TurbineID == turbineID && r.Open() {
			installedIDs[r.InstanceID] = true
		}
	}

	installed := []models.PartInstance{}
	for _, instance := range s.doc.PartInstances {
		if installedIDs[instance.InstanceID] {
			installed = append(installed, instance)
		}
	}
	return installed
}

// PartLifecycle reconstructs the complete history for a part instance.
// This is a pure read-side join; the only failure mode is an unknown
// instance ID.
func (s *Service) PartLifecycle(instanceID int) (*Lifecycle, error) {
	instance := findInstanceByID(s.doc, instanceID)
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	lifecycle := &Lifecycle{
		Instance:      *instance,
		Installations: []models.InstallationRecord{},
		Maintenance:   []models.MaintenanceLog{},
	}
	if master := findPartMaster(s.doc, instance.PartNumber); master != nil {
		m := *master
		lifecycle.Master = &m
	}
	for _, r := range s.doc.InstallationRecords {
		if r.InstanceID == instanceID {
			lifecycle.Installations = append(lifecycle.Installations, r)
		}
	}
	for _, l := range s.doc.MaintenanceLogs {
		if l.InstanceID == instanceID {
			lifecycle.Maintenance = append(lifecycle.Maintenance, l)
		}
	}
	return lifecycle, nil
}

// TurbineHistory returns every installation record referencing a
// turbine, open and closed, in insertion order.
func (s *Service) TurbineHistory(turbineID int) []models.InstallationRecord {
	history := []models.InstallationRecord{}
	for _, r := range s.doc.InstallationRecords {
		if r.TurbineID == turbineID {
			history = append(history, r)
		}
	}
	return history
}

// MaintenanceLogs returns the maintenance notes for a part instance in
// insertion order.
func (s *Service) MaintenanceLogs(instanceID int) []models.MaintenanceLog {
	logs := []models.MaintenanceLog{}
	for _, l := range s.doc.MaintenanceLogs {
		if l.InstanceID == instanceID {
			logs = append(logs, l)
		}
	}
	return logs
}
