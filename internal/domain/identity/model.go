package identity

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the access checks. Registration always produces a
// patient; doctor and admin accounts are provisioned out of band.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User maps to the users table. The password hash never leaves the
// identity package.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
