package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no patient profile exists for a user.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// GetProfile returns the patient profile joined with user account
	// fields, or ErrNotFound.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// FindIDByUserID resolves the patient id owned by a user account.
	FindIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	// UpdateProfile overwrites all mutable profile fields of the patient.
	UpdateProfile(ctx context.Context, patientID uuid.UUID, p *ProfileUpdate) error
}

type DoctorRepository interface {
	// ListAll returns the full doctor catalog ordered by name.
	ListAll(ctx context.Context) ([]*Doctor, error)
}
