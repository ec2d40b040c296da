package models

// MaintenanceLog is a free-text maintenance note attached to a part
// instance, independent of any installation. LogDate is an RFC 3339
// timestamp.
type MaintenanceLog struct {
	LogID       int    `json:"log_id" bson:"log_id"`
	InstanceID  int    `json:"instance_id" bson:"instance_id"`
	Description string `json:"description" bson:"description"`
	LogDate     string `json:"log_date" bson:"log_date"`
}
