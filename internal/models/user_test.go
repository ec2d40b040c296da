package models

import "testing"

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"engineer role", RoleEngineer, true},
		{"viewer role", RoleViewer, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	engineer := &User{Role: RoleEngineer}
	viewer := &User{Role: RoleViewer}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		{"admin can manage users", admin, "manage_users", true},
		{"admin can install parts", admin, "install_part", true},

		{"engineer cannot manage users", engineer, "manage_users", false},
		{"engineer can install parts", engineer, "install_part", true},
		{"engineer can add maintenance", engineer, "add_maintenance", true},

		{"viewer can view turbines", viewer, "view_turbines", true},
		{"viewer can view lifecycle", viewer, "view_lifecycle", true},
		{"viewer cannot install parts", viewer, "install_part", false},
		{"viewer cannot manage users", viewer, "manage_users", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("User with role %s HasPermission(%s) = %v, want %v",
					tt.user.Role, tt.action, result, tt.expected)
			}
		})
	}
}

func TestInstallationRecord_Open(t *testing.T) {
	open := &InstallationRecord{InstallationID: 1, InstanceID: 1, TurbineID: 1, InstallationDate: "2024-01-15"}
	if !open.Open() {
		t.Error("record without removal date should be open")
	}

	closed := &InstallationRecord{InstallationID: 2, InstanceID: 1, TurbineID: 1, InstallationDate: "2024-01-15", RemovalDate: "2024-03-02"}
	if closed.Open() {
		t.Error("record with removal date should be closed")
	}
}
