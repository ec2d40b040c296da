package models

import "time"

// Role represents user roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEngineer Role = "engineer"
	RoleViewer   Role = "viewer"
)

// User represents an API user
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         Role       `json:"role" bson:"role"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Claims represents JWT claims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Exp      int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEngineer, RoleViewer:
		return true
	default:
		return false
	}
}

// HasPermission checks if a user has permission for a specific action.
// Admins can do everything, engineers can mutate tracking data, viewers
// are read-only.
func (u *User) HasPermission(action string) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleEngineer:
		return action != "manage_users"
	case RoleViewer:
		return action == "view_turbines" || action == "view_parts" ||
			action == "view_lifecycle" || action == "view_maintenance"
	default:
		return false
	}
}
