package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table.
type Patient struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	UserID           uuid.UUID  `db:"user_id" json:"user_id"`
	FullName         string     `db:"full_name" json:"full_name"`
	DateOfBirth      *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender           *string    `db:"gender" json:"gender,omitempty"`
	BloodGroup       *string    `db:"blood_group" json:"blood_group,omitempty"`
	Phone            *string    `db:"phone" json:"phone,omitempty"`
	Address          *string    `db:"address" json:"address,omitempty"`
	EmergencyContact *string    `db:"emergency_contact" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// Profile is the patient record joined with the owning user's account
// fields, as returned by the profile endpoint.
type Profile struct {
	UserID           uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	FullName         string     `json:"full_name"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	BloodGroup       *string    `json:"blood_group,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`
}

// Doctor maps to the doctors catalog table. Read-only from this service.
type Doctor struct {
	ID              uuid.UUID `db:"id" json:"id"`
	FullName        string    `db:"full_name" json:"full_name"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Qualification   *string   `db:"qualification" json:"qualification,omitempty"`
	Experience      *int      `db:"experience" json:"experience,omitempty"`
	ConsultationFee *float64  `db:"consultation_fee" json:"consultation_fee,omitempty"`
	AvailableDays   *string   `db:"available_days" json:"available_days,omitempty"`
}
