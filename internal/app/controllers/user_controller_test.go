package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/middleware"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// stubUserService backs the user controller with canned data
type stubUserService struct {
	users       map[int64]*models.User
	nextID      int64
	passwordErr error
}

func newStubUserService(users ...*models.User) *stubUserService {
	s := &stubUserService{users: map[int64]*models.User{}, nextID: 1}
	for _, user := range users {
		if user.ID >= s.nextID {
			s.nextID = user.ID + 1
		}
		s.users[user.ID] = user
	}
	return s
}

func (s *stubUserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	for _, existing := range s.users {
		if existing.Email == req.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	user := &models.User{
		ID:             s.nextID,
		Email:          req.Email,
		HashedPassword: "$2a$12$stubbedhash",
		FullName:       req.FullName,
		IsActive:       isActive,
		IsSuperuser:    req.IsSuperuser,
	}
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

func (s *stubUserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	for id := int64(1); id < s.nextID; id++ {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	total := int64(len(users))
	if offset >= len(users) {
		return nil, total, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, total, nil
}

func (s *stubUserService) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if _, ok := s.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	return s.passwordErr
}

// asUser simulates a validated session for the given user id
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func newUserRouter(service *stubUserService, sessionUserID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUserController(service)

	group := router.Group("")
	if sessionUserID > 0 {
		group.Use(asUser(sessionUserID))
	}
	group.POST("/users", controller.CreateUser)
	group.GET("/users", controller.ListUsers)
	group.GET("/users/me", controller.GetMe)
	group.PATCH("/users/me/password", controller.UpdatePassword)

	return router
}

func sendJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUserEndpoint(t *testing.T) {
	router := newUserRouter(newStubUserService(), 0)

	w := sendJSON(router, "POST", "/users", `{"email":"new@example.com","password":"long-enough","full_name":"New User"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Email != "new@example.com" {
		t.Errorf("unexpected email %q", resp.Email)
	}
	if !resp.IsActive {
		t.Error("expected is_active to default to true")
	}

	if strings.Contains(w.Body.String(), "hashed_password") || strings.Contains(w.Body.String(), "stubbedhash") {
		t.Error("response must not leak the password hash")
	}
}

func TestCreateUserEndpointValidation(t *testing.T) {
	router := newUserRouter(newStubUserService(), 0)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"long-enough"}`},
		{"malformed email", `{"email":"nope","password":"long-enough"}`},
		{"short password", `{"email":"new@example.com","password":"short"}`},
		{"missing password", `{"email":"new@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := sendJSON(router, "POST", "/users", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Code != dto.ErrorCodeValidationFailed {
				t.Errorf("expected code %s, got %s", dto.ErrorCodeValidationFailed, resp.Code)
			}
		})
	}
}

func TestCreateUserEndpointDuplicateEmail(t *testing.T) {
	existing := &models.User{ID: 1, Email: "dup@example.com", IsActive: true}
	router := newUserRouter(newStubUserService(existing), 0)

	w := sendJSON(router, "POST", "/users", `{"email":"dup@example.com","password":"long-enough"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestListUsersEndpoint(t *testing.T) {
	router := newUserRouter(newStubUserService(
		&models.User{ID: 1, Email: "a@example.com", IsActive: true},
		&models.User{ID: 2, Email: "b@example.com", IsActive: true},
	), 0)

	w := sendJSON(router, "GET", "/users?offset=0&limit=1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.UserListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if len(resp.Data) != 1 {
		t.Errorf("expected 1 user in page, got %d", len(resp.Data))
	}
}

func TestListUsersEndpointEmpty(t *testing.T) {
	router := newUserRouter(newStubUserService(), 0)

	w := sendJSON(router, "GET", "/users", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// An empty page serializes as [] rather than null.
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Errorf("expected empty data array, got %s", w.Body.String())
	}
}

func TestGetMeEndpoint(t *testing.T) {
	me := &models.User{ID: 5, Email: "me@example.com", IsActive: true}
	router := newUserRouter(newStubUserService(me), me.ID)

	w := sendJSON(router, "GET", "/users/me", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != me.ID {
		t.Errorf("expected id %d, got %d", me.ID, resp.ID)
	}
}

func TestGetMeEndpointInactive(t *testing.T) {
	me := &models.User{ID: 5, Email: "me@example.com", IsActive: false}
	router := newUserRouter(newStubUserService(me), me.ID)

	if w := sendJSON(router, "GET", "/users/me", ""); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for inactive user, got %d", w.Code)
	}
}

func TestGetMeEndpointNoSession(t *testing.T) {
	router := newUserRouter(newStubUserService(), 0)

	if w := sendJSON(router, "GET", "/users/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	me := &models.User{ID: 5, Email: "me@example.com", IsActive: true}
	router := newUserRouter(newStubUserService(me), me.ID)

	w := sendJSON(router, "PATCH", "/users/me/password",
		`{"current_password":"old-password","new_password":"new-password"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Password updated successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestUpdatePasswordEndpointWrongCurrent(t *testing.T) {
	me := &models.User{ID: 5, Email: "me@example.com", IsActive: true}
	service := newStubUserService(me)
	service.passwordErr = apperrors.ErrPasswordMismatch
	router := newUserRouter(service, me.ID)

	w := sendJSON(router, "PATCH", "/users/me/password",
		`{"current_password":"bad-password","new_password":"new-password"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for wrong current password, got %d", w.Code)
	}
}

func TestUpdatePasswordEndpointShortNewPassword(t *testing.T) {
	me := &models.User{ID: 5, Email: "me@example.com", IsActive: true}
	router := newUserRouter(newStubUserService(me), me.ID)

	w := sendJSON(router, "PATCH", "/users/me/password",
		`{"current_password":"old-password","new_password":"short"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short new password, got %d", w.Code)
	}
}
