package models

// PartMaster is a catalog entry describing a part type, not a physical
// unit. PartNumber is its human key.
type PartMaster struct {
	PartNumber   string `json:"part_number" bson:"part_number"`
	Description  string `json:"description" bson:"description"`
	Manufacturer string `json:"manufacturer" bson:"manufacturer"`
}

// PartInstance is one physical, serialized unit of a part type.
// ManufactureDate is an ISO date string, empty when unknown.
type PartInstance struct {
	InstanceID      int    `json:"instance_id" bson:"instance_id"`
	PartNumber      string `json:"part_number" bson:"part_number"`
	SerialNumber    string `json:"serial_number" bson:"serial_number"`
	ManufactureDate string `json:"manufacture_date,omitempty" bson:"manufacture_date,omitempty"`
}
