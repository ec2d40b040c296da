package models

// Turbine represents a gas turbine unit that parts are installed into.
// SerialNumber is the human-facing lookup key; TurbineID is the internal
// relational key used by installation records.
type Turbine struct {
	TurbineID          int     `json:"turbine_id" bson:"turbine_id"`
	SerialNumber       string  `json:"serial_number" bson:"serial_number"`
	FrameType          string  `json:"frame_type" bson:"frame_type"`
	Location           string  `json:"location" bson:"location"`
	CurrentTotalHours  float64 `json:"current_total_hours" bson:"current_total_hours"`
	CurrentTotalStarts int     `json:"current_total_starts" bson:"current_total_starts"`
}
