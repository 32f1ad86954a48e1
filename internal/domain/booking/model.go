package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. An appointment only ever moves scheduled -> cancelled;
// rows are never deleted.
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID        uuid.UUID `db:"doctor_id" json:"doctor_id"`
	AppointmentDate time.Time `db:"appointment_date" json:"-"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time"`
	Symptoms        *string   `db:"symptoms" json:"symptoms,omitempty"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AppointmentView is an appointment joined with the doctor's name and
// specialization, as returned by the list endpoint.
type AppointmentView struct {
	ID              uuid.UUID `json:"id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Symptoms        *string   `json:"symptoms,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	DoctorName      string    `json:"doctor_name"`
	Specialization  string    `json:"specialization"`
	CreatedAt       time.Time `json:"created_at"`
}

// PatientRef is the slice of a patient record the booking flow needs.
type PatientRef struct {
	ID       uuid.UUID
	FullName string
}

// DoctorRef is the slice of a doctor record the booking flow needs.
type DoctorRef struct {
	ID       uuid.UUID
	FullName string
}

// Slot identifies a bookable unit: one doctor, one date, one time.
type Slot struct {
	DoctorID uuid.UUID
	Date     time.Time
	Time     string
}
