package models

// InstallationRecord is one continuous interval during which a part
// instance was installed in a turbine. A record with an empty
// RemovalDate is open: the instance is currently installed. Counter
// snapshots are pointers because older records may lack them.
type InstallationRecord struct {
	InstallationID         int      `json:"installation_id" bson:"installation_id"`
	InstanceID             int      `json:"instance_id" bson:"instance_id"`
	TurbineID              int      `json:"turbine_id" bson:"turbine_id"`
	InstallationDate       string   `json:"installation_date" bson:"installation_date"`
	RemovalDate            string   `json:"removal_date,omitempty" bson:"removal_date,omitempty"`
	TurbineHoursAtInstall  *float64 `json:"turbine_hours_at_install,omitempty" bson:"turbine_hours_at_install,omitempty"`
	TurbineStartsAtInstall *int     `json:"turbine_starts_at_install,omitempty" bson:"turbine_starts_at_install,omitempty"`
	TurbineHoursAtRemoval  *float64 `json:"turbine_hours_at_removal,omitempty" bson:"turbine_hours_at_removal,omitempty"`
	TurbineStartsAtRemoval *int     `json:"turbine_starts_at_removal,omitempty" bson:"turbine_starts_at_removal,omitempty"`
}

// Open reports whether the record is an active installation.
func (r *InstallationRecord) Open() bool {
	return r.RemovalDate == ""
}
