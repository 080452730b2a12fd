package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// stubAuthService issues a fixed token for one known credential pair
type stubAuthService struct {
	email    string
	password string
	inactive bool
	token    string
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email != s.email || password != s.password {
		return "", apperrors.ErrInvalidCredentials
	}
	if s.inactive {
		return "", apperrors.ErrAccountDisabled
	}
	return s.token, nil
}

func newAuthRouter(service *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(service, zerolog.Nop())
	router.POST("/login", controller.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router := newAuthRouter(&stubAuthService{
		email:    "user@example.com",
		password: "secret-password",
		token:    "signed.jwt.token",
	})

	w := postJSON(router, "/login", `{"email":"user@example.com","password":"secret-password"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "signed.jwt.token" {
		t.Errorf("unexpected access token %q", resp.AccessToken)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token type bearer, got %q", resp.TokenType)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode raw response: %v", err)
	}
	if _, ok := raw["access_token"]; !ok {
		t.Error("expected snake_case access_token field in the response")
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{
		email:    "user@example.com",
		password: "secret-password",
		token:    "signed.jwt.token",
	})

	w := postJSON(router, "/login", `{"email":"user@example.com","password":"wrong-password"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Detail != "Incorrect email or password" {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	router := newAuthRouter(&stubAuthService{
		email:    "user@example.com",
		password: "secret-password",
		inactive: true,
	})

	w := postJSON(router, "/login", `{"email":"user@example.com","password":"secret-password"}`)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for inactive user, got %d", w.Code)
	}
}

func TestLoginFailureIsLogged(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	controller := NewAuthController(&stubAuthService{
		email:    "user@example.com",
		password: "secret-password",
	}, zerolog.New(&buf))

	router := gin.New()
	router.POST("/login", controller.Login)

	w := postJSON(router, "/login", `{"email":"user@example.com","password":"wrong-password"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "Login attempt failed") {
		t.Errorf("expected failed login to be logged, got %q", buf.String())
	}
}

func TestLoginInvalidBody(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"user@example.com"}`},
		{"missing email", `{"password":"secret-password"}`},
		{"malformed email", `{"email":"not-an-email","password":"secret-password"}`},
		{"not json", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(router, "/login", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}
