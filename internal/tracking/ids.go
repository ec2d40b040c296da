package tracking

import "github.com/enerdev/turbine-parts/internal/models"

// nextID returns one more than the maximum existing ID in the
// collection, or 1 when empty. IDs are never reused: removal of a part
// is a state update, not a delete, so the maximum only ever grows.
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if v := id(item); v >= next {
			next = v + 1
		}
	}
	return next
}

// Lookups are linear scans returning the first match in insertion
// order, nil when absent. Callers decide whether absence is an error.

func findTurbineBySerial(doc *models.Document, serialNumber string) *models.Turbine {
	for i := range doc.Turbines {
		if doc.Turbines[i].SerialNumber == serialNumber {
			return &doc.Turbines[i]
		}
	}
	return nil
}

func findTurbineByID(doc *models.Document, turbineID int) *models.Turbine {
	for i := range doc.Turbines {
		if doc.Turbines[i].TurbineID == turbineID {
			return &doc.Turbines[i]
		}
	}
	return nil
}

func findPartMaster(doc *models.Document, partNumber string) *models.PartMaster {
	for i := range doc.PartMasters {
		if doc.PartMasters[i].PartNumber == partNumber {
			return &doc.PartMasters[i]
		}
	}
	return nil
}

func findInstanceBySerial(doc *models.Document, serialNumber string) *models.PartInstance {
	for i := range doc.PartInstances {
		if doc.PartInstances[i].SerialNumber == serialNumber {
			return &doc.PartInstances[i]
		}
	}
	return nil
}

func findInstanceByID(doc *models.Document, instanceID int) *models.PartInstance {
	for i := range doc.PartInstances {
		if doc.PartInstances[i].InstanceID == instanceID {
			return &doc.PartInstances[i]
		}
	}
	return nil
}

// findOpenRecord returns the first open installation record for the
// instance in insertion order, nil when the instance is uninstalled.
func findOpenRecord(doc *models.Document, instanceID int) *models.InstallationRecord {
	for i := range doc.InstallationRecords {
		r := &doc.InstallationRecords[i]
		if r.InstanceID == instanceID && r.Open() {
			return r
		}
	}
	return nil
}
