package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mediconnect/mediconnect/internal/platform/api"
)

func newAuthedEcho(issuer *TokenIssuer) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.ErrorHandler(zerolog.Nop())
	g := e.Group("/api", Middleware(issuer))
	g.GET("/whoami", func(c echo.Context) error {
		ctx := c.Request().Context()
		return c.JSON(http.StatusOK, map[string]string{
			"id":    UserIDFromContext(ctx).String(),
			"email": EmailFromContext(ctx),
			"role":  RoleFromContext(ctx),
		})
	})
	g.GET("/patient-only", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireRole("patient"))
	return e
}

func get(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewarePropagatesIdentity(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	e := newAuthedEcho(issuer)
	userID := uuid.New()

	token, err := issuer.Issue(userID, "jane@example.com", "patient")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	rec := get(e, "/api/whoami", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	for _, want := range []string{userID.String(), "jane@example.com", "patient"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("response missing %q: %s", want, rec.Body.String())
		}
	}
}

func TestMiddlewareRejectsBadHeaders(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	e := newAuthedEcho(issuer)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(e, "/api/whoami", tc.header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	e := newAuthedEcho(issuer)

	patient, _ := issuer.Issue(uuid.New(), "p@example.com", "patient")
	doctor, _ := issuer.Issue(uuid.New(), "d@example.com", "doctor")

	if rec := get(e, "/api/patient-only", "Bearer "+patient); rec.Code != http.StatusOK {
		t.Errorf("patient: expected 200, got %d", rec.Code)
	}
	if rec := get(e, "/api/patient-only", "Bearer "+doctor); rec.Code != http.StatusForbidden {
		t.Errorf("doctor: expected 403, got %d", rec.Code)
	}
}
