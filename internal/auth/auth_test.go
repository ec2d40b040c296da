package auth

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enerdev/turbine-parts/internal/models"
)

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_HashPassword(t *testing.T) {
	service, _ := NewService()

	password := "testpassword123"
	hash, err := service.HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestService_CheckPassword(t *testing.T) {
	service, _ := NewService()

	password := "testpassword123"
	hash, _ := service.HashPassword(password)

	// Test correct password
	assert.True(t, service.CheckPassword(password, hash))

	// Test incorrect password
	assert.False(t, service.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateToken(t *testing.T) {
	service, _ := NewService()

	user := &models.User{
		ID:       "u-1",
		Username: "testuser",
		Role:     models.RoleAdmin,
	}

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := NewService()

	user := &models.User{
		ID:       "u-1",
		Username: "testuser",
		Role:     models.RoleEngineer,
	}

	token, _ := service.GenerateToken(user)

	// Test valid token
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)

	// Test invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service, _ := NewService()

	token, err := service.ExtractTokenFromHeader("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = service.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = service.ExtractTokenFromHeader("Basic abc123")
	assert.Error(t, err)

	_, err = service.ExtractTokenFromHeader("Bearer")
	assert.Error(t, err)
}

func TestService_ValidatePassword(t *testing.T) {
	service, _ := NewService()

	assert.NoError(t, service.ValidatePassword("longenough"))
	assert.Error(t, service.ValidatePassword("short"))
}

func TestUserRegistry_Add(t *testing.T) {
	registry := NewUserRegistry()

	user, err := registry.Add(models.User{Username: "engineer1", Role: models.RoleEngineer, IsActive: true})
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	found := registry.FindByUsername("engineer1")
	assert.NotNil(t, found)
	assert.Equal(t, models.RoleEngineer, found.Role)

	_, err = registry.Add(models.User{Username: "engineer1"})
	assert.Equal(t, ErrUserExists, err)

	assert.Nil(t, registry.FindByUsername("nobody"))
}

func TestUserRegistry_SeedAdmin(t *testing.T) {
	service, _ := NewService()

	os.Unsetenv("ADMIN_PASSWORD")
	registry := NewUserRegistry()
	assert.NoError(t, registry.SeedAdmin(service))
	assert.Nil(t, registry.FindByUsername("admin"))

	os.Setenv("ADMIN_PASSWORD", "supersecret")
	os.Setenv("ADMIN_USERNAME", "chief")
	defer os.Unsetenv("ADMIN_PASSWORD")
	defer os.Unsetenv("ADMIN_USERNAME")

	registry = NewUserRegistry()
	assert.NoError(t, registry.SeedAdmin(service))
	admin := registry.FindByUsername("chief")
	assert.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, service.CheckPassword("supersecret", admin.PasswordHash))
}

func TestUserRegistry_UpdateLastLogin(t *testing.T) {
	registry := NewUserRegistry()
	_, err := registry.Add(models.User{Username: "viewer1", Role: models.RoleViewer})
	assert.NoError(t, err)

	registry.UpdateLastLogin("viewer1")
	user := registry.FindByUsername("viewer1")
	assert.NotNil(t, user.LastLogin)
}
