package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/enerdev/turbine-parts/internal/models"
)

var ErrUserExists = errors.New("username already exists")

// UserRegistry keeps API users in memory. Users are operational state
// of the HTTP surface, not part of the tracked document, so they are
// not persisted; an admin account is seeded from the environment on
// startup.
type UserRegistry struct {
	mu     sync.RWMutex
	users  map[string]*models.User // keyed by username
	nextID int
}

// NewUserRegistry creates an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[string]*models.User), nextID: 1}
}

// SeedAdmin creates the initial admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Nothing is seeded when the password is unset.
func (r *UserRegistry) SeedAdmin(authService *Service) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return nil
	}
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = r.Add(models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	return err
}

// Add registers a user, assigning its ID.
func (r *UserRegistry) Add(user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, ErrUserExists
	}
	user.ID = fmt.Sprintf("u-%d", r.nextID)
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.Username] = &user
	return &user, nil
}

// FindByUsername returns the user with the given username, nil when
// absent.
func (r *UserRegistry) FindByUsername(username string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[username]
}

// UpdateLastLogin stamps the user's last login time.
func (r *UserRegistry) UpdateLastLogin(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[username]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
}
