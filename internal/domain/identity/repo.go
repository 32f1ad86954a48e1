package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned when the email already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when no user matches.
	ErrNotFound = errors.New("not found")
)

type Repository interface {
	// CreateWithPatient inserts the user and its patient profile in one
	// transaction. Returns ErrEmailTaken on a duplicate email.
	CreateWithPatient(ctx context.Context, u *User, fullName string) (patientID uuid.UUID, err error)
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
