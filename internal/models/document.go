package models

// Document is the single in-memory dataset the tracker operates on. It
// exclusively owns the five record collections; records reference each
// other only through key values (integer IDs, part numbers), never
// through pointers, so the document can be serialized as-is.
type Document struct {
	Turbines            []Turbine            `json:"turbines" bson:"turbines"`
	PartMasters         []PartMaster         `json:"part_masters" bson:"part_masters"`
	PartInstances       []PartInstance       `json:"part_instances" bson:"part_instances"`
	InstallationRecords []InstallationRecord `json:"installation_records" bson:"installation_records"`
	MaintenanceLogs     []MaintenanceLog     `json:"maintenance_logs" bson:"maintenance_logs"`
}

// NewDocument returns a document with five empty collections, the shape
// an empty or missing store initializes to.
func NewDocument() *Document {
	return &Document{
		Turbines:            []Turbine{},
		PartMasters:         []PartMaster{},
		PartInstances:       []PartInstance{},
		InstallationRecords: []InstallationRecord{},
		MaintenanceLogs:     []MaintenanceLog{},
	}
}
