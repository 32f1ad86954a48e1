package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mediconnect/mediconnect/internal/platform/api"
	"github.com/mediconnect/mediconnect/internal/platform/auth"
)

func newTestEcho() *echo.Echo {
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	svc := NewService(newMockRepo(), tokens)

	e := echo.New()
	e.HTTPErrorHandler = api.ErrorHandler(zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api"))
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	e := newTestEcho()

	rec := post(e, "/api/auth/register",
		`{"fullName":"Jane Roe","email":"jane@example.com","password":"hunter2hunter2"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["success"] != true || body["message"] != "Account created successfully" {
		t.Errorf("unexpected envelope: %v", body)
	}
	if tok, _ := body["token"].(string); tok == "" {
		t.Error("expected a token in the response")
	}
	user, _ := body["user"].(map[string]interface{})
	if user["role"] != "patient" {
		t.Errorf("expected patient role, got %v", user["role"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must not appear in the response")
	}

	// Same email again conflicts.
	rec = post(e, "/api/auth/register",
		`{"fullName":"Jane Roe","email":"jane@example.com","password":"hunter2hunter2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate: expected 400, got %d", rec.Code)
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	e := newTestEcho()

	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"fullName":"Jane Roe","email":"jane@example.com","password":"short"}`},
		{"bad email", `{"fullName":"Jane Roe","email":"not-an-email","password":"hunter2hunter2"}`},
		{"missing name", `{"email":"jane@example.com","password":"hunter2hunter2"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(e, "/api/auth/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestEcho()
	post(e, "/api/auth/register",
		`{"fullName":"Jane Roe","email":"jane@example.com","password":"hunter2hunter2"}`)

	rec := post(e, "/api/auth/login", `{"email":"jane@example.com","password":"hunter2hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = post(e, "/api/auth/login", `{"email":"jane@example.com","password":"wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Invalid email or password" {
		t.Errorf("unexpected message %v", body["message"])
	}
}
