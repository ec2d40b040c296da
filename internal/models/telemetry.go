package models

import "time"

// OperatingTelemetry is a counter reading reported by a plant-side
// collector for one turbine. Hours and starts are cumulative totals,
// applied to the turbine record as-is.
type OperatingTelemetry struct {
	TurbineSerialNumber string    `json:"turbine_serial_number" bson:"turbine_serial_number"`
	Timestamp           time.Time `json:"timestamp" bson:"timestamp"`
	Hours               float64   `json:"hours" bson:"hours"`
	Starts              int       `json:"starts" bson:"starts"`
}
