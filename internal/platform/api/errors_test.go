package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Conflict("slot taken"), http.StatusBadRequest},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("wrong role"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Unexpected("boom", errors.New("db down")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.status {
			t.Errorf("%v: expected status %d, got %d", tc.err.Kind, tc.status, got)
		}
	}
}

func TestAsErrorUnwrapsChain(t *testing.T) {
	inner := NotFound("Appointment not found")
	wrapped := fmt.Errorf("cancel: %w", inner)

	got := AsError(wrapped)
	if got == nil || got.Kind != KindNotFound {
		t.Fatalf("expected to recover NotFound from wrapped error, got %v", got)
	}

	if AsError(errors.New("plain")) != nil {
		t.Error("plain errors must not be treated as api errors")
	}
}

func TestUnexpectedKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unexpected("Error booking appointment", cause)

	if !errors.Is(err, cause) {
		t.Error("Unexpected must preserve the cause for errors.Is")
	}
	if err.Message != "Error booking appointment" {
		t.Errorf("unexpected message %q", err.Message)
	}
}
