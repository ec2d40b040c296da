package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enerdev/turbine-parts/internal/auth"
	"github.com/enerdev/turbine-parts/internal/middleware"
	"github.com/enerdev/turbine-parts/internal/models"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *auth.Service, *auth.UserRegistry) {
	t.Helper()
	authService, err := auth.NewService()
	require.NoError(t, err)
	users := auth.NewUserRegistry()
	return NewAuthHandler(authService, users), authService, users
}

func addUser(t *testing.T, authService *auth.Service, users *auth.UserRegistry, username, password string, role models.Role) {
	t.Helper()
	hash, err := authService.HashPassword(password)
	require.NoError(t, err)
	_, err = users.Add(models.User{Username: username, PasswordHash: hash, Role: role, IsActive: true})
	require.NoError(t, err)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, authService, users := newAuthFixture(t)
	addUser(t, authService, users, "engineer1", "password123", models.RoleEngineer)

	body, _ := json.Marshal(models.LoginRequest{Username: "engineer1", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "engineer1", resp.User.Username)

	claims, err := authService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEngineer, claims.Role)

	user := users.FindByUsername("engineer1")
	assert.NotNil(t, user.LastLogin)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler, authService, users := newAuthFixture(t)
	addUser(t, authService, users, "engineer1", "password123", models.RoleEngineer)

	tests := []struct {
		name     string
		request  models.LoginRequest
		expected int
	}{
		{"wrong password", models.LoginRequest{Username: "engineer1", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", models.LoginRequest{Username: "ghost", Password: "password123"}, http.StatusUnauthorized},
		{"missing fields", models.LoginRequest{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			handler.Login(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestAuthHandler_Login_InactiveUser(t *testing.T) {
	handler, authService, users := newAuthFixture(t)
	hash, _ := authService.HashPassword("password123")
	_, err := users.Add(models.User{Username: "gone", PasswordHash: hash, Role: models.RoleViewer, IsActive: false})
	require.NoError(t, err)

	body, _ := json.Marshal(models.LoginRequest{Username: "gone", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _, users := newAuthFixture(t)

	body, _ := json.Marshal(models.RegisterRequest{Username: "viewer1", Password: "longenough", Role: models.RoleViewer})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, users.FindByUsername("viewer1"))

	// Duplicate username conflicts.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	handler.Register(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	handler, _, _ := newAuthFixture(t)

	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{"short username", models.RegisterRequest{Username: "ab", Password: "longenough"}},
		{"short password", models.RegisterRequest{Username: "viewer1", Password: "short"}},
		{"bad role", models.RegisterRequest{Username: "viewer1", Password: "longenough", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterRoutes_EndToEnd(t *testing.T) {
	api := newTestAPI(t)
	authService, err := auth.NewService()
	require.NoError(t, err)
	users := auth.NewUserRegistry()
	addUser(t, authService, users, "engineer1", "password123", models.RoleEngineer)

	handler := RegisterRoutes(http.NewServeMux(), api, NewAuthHandler(authService, users),
		middleware.NewAuthMiddleware(authService), middleware.NewRateLimitMiddleware())
	server := httptest.NewServer(handler)
	defer server.Close()

	// Unauthenticated request is rejected.
	resp, err := http.Get(server.URL + "/api/turbines")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Login, then list turbines with the token.
	body, _ := json.Marshal(models.LoginRequest{Username: "engineer1", Password: "password123"})
	resp, err = http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/turbines", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Health needs no token.
	resp, err = http.Get(server.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
