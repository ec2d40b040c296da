package tracking

import (
	"context"
	"time"

	"github.com/enerdev/turbine-parts/internal/models"
)

// AddTurbine registers a new turbine. Serial numbers are enforced
// unique because every external caller resolves turbines by them.
func (s *Service) AddTurbine(ctx context.Context, serialNumber, frameType, location string, totalHours float64, totalStarts int) (models.Turbine, error) {
	if findTurbineBySerial(s.doc, serialNumber) != nil {
		return models.Turbine{}, ErrDuplicateSerialNumber
	}

	turbine := models.Turbine{
		TurbineID:          nextID(s.doc.Turbines, func(t models.Turbine) int { return t.TurbineID }),
		SerialNumber:       serialNumber,
		FrameType:          frameType,
		Location:           location,
		CurrentTotalHours:  totalHours,
		CurrentTotalStarts: totalStarts,
	}
	s.doc.Turbines = append(s.doc.Turbines, turbine)
	if err := s.persist(ctx); err != nil {
		s.doc.Turbines = s.doc.Turbines[:len(s.doc.Turbines)-1]
		return models.Turbine{}, err
	}
	return turbine, nil
}

// AddPartMaster registers a new part type in the catalog.
func (s *Service) AddPartMaster(ctx context.Context, partNumber, description, manufacturer string) (models.PartMaster, error) {
	if findPartMaster(s.doc, partNumber) != nil {
		return models.PartMaster{}, ErrDuplicatePartNumber
	}

	master := models.PartMaster{
		PartNumber:   partNumber,
		Description:  description,
		Manufacturer: manufacturer,
	}
	s.doc.PartMasters = append(s.doc.PartMasters, master)
	if err := s.persist(ctx); err != nil {
		s.doc.PartMasters = s.doc.PartMasters[:len(s.doc.PartMasters)-1]
		return models.PartMaster{}, err
	}
	return master, nil
}

// AddPartInstance registers one physical unit of a cataloged part type.
// The part number must resolve to an existing part master.
func (s *Service) AddPartInstance(ctx context.Context, partNumber, serialNumber, manufactureDate string) (models.PartInstance, error) {
	if findPartMaster(s.doc, partNumber) == nil {
		return models.PartInstance{}, ErrPartMasterNotFound
	}
	if findInstanceBySerial(s.doc, serialNumber) != nil {
		return models.PartInstance{}, ErrDuplicateSerialNumber
	}

	instance := models.PartInstance{
		InstanceID:      nextID(s.doc.PartInstances, func(p models.PartInstance) int { return p.InstanceID }),
		PartNumber:      partNumber,
		SerialNumber:    serialNumber,
		ManufactureDate: manufactureDate,
	}
	s.doc.PartInstances = append(s.doc.PartInstances, instance)
	if err := s.persist(ctx); err != nil {
		s.doc.PartInstances = s.doc.PartInstances[:len(s.doc.PartInstances)-1]
		return models.PartInstance{}, err
	}
	return instance, nil
}

// AddMaintenanceLog attaches a free-standing maintenance note to a part
// instance. The log date defaults to the current time.
func (s *Service) AddMaintenanceLog(ctx context.Context, instanceID int, description, logDate string) (models.MaintenanceLog, error) {
	if findInstanceByID(s.doc, instanceID) == nil {
		return models.MaintenanceLog{}, ErrInstanceNotFound
	}
	if logDate == "" {
		logDate = s.now().Format(time.RFC3339)
	}

	entry := models.MaintenanceLog{
		LogID:       nextID(s.doc.MaintenanceLogs, func(l models.MaintenanceLog) int { return l.LogID }),
		InstanceID:  instanceID,
		Description: description,
		LogDate:     logDate,
	}
	s.doc.MaintenanceLogs = append(s.doc.MaintenanceLogs, entry)
	if err := s.persist(ctx); err != nil {
		s.doc.MaintenanceLogs = s.doc.MaintenanceLogs[:len(s.doc.MaintenanceLogs)-1]
		return models.MaintenanceLog{}, err
	}
	return entry, nil
}

// GetTurbineBySerial resolves a turbine by its serial number.
func (s *Service) GetTurbineBySerial(serialNumber string) (models.Turbine, error) {
	t := findTurbineBySerial(s.doc, serialNumber)
	if t == nil {
		return models.Turbine{}, ErrTurbineNotFound
	}
	return *t, nil
}

// GetPartBySerial resolves a part instance by its serial number.
func (s *Service) GetPartBySerial(serialNumber string) (models.PartInstance, error) {
	p := findInstanceBySerial(s.doc, serialNumber)
	if p == nil {
		return models.PartInstance{}, ErrPartNotFound
	}
	return *p, nil
}

// Turbines returns all turbines in insertion order.
func (s *Service) Turbines() []models.Turbine {
	return s.doc.Turbines
}

// PartMasters returns the part catalog in insertion order.
func (s *Service) PartMasters() []models.PartMaster {
	return s.doc.PartMasters
}

// PartInstances returns all part instances in insertion order.
func (s *Service) PartInstances() []models.PartInstance {
	return s.doc.PartInstances
}
