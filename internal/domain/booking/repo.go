package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSlotTaken is returned by Repository.Create when another live
// appointment already occupies the slot. The Postgres implementation
// derives it from the partial unique index on
// (doctor_id, appointment_date, appointment_time) WHERE status <> 'cancelled',
// so two concurrent bookings cannot both succeed.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// Create inserts a scheduled appointment. Returns ErrSlotTaken when
	// the slot uniqueness constraint rejects the insert.
	Create(ctx context.Context, a *Appointment) error
	// SlotTaken reports whether a non-cancelled appointment occupies the
	// slot. Advisory only: Create remains the authority under concurrency.
	SlotTaken(ctx context.Context, slot Slot) (bool, error)
	// ListByPatient returns the patient's appointments joined with doctor
	// details, newest slot first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*AppointmentView, error)
	// Cancel flips a scheduled appointment to cancelled, scoped to the
	// owning patient. Reports whether a row was updated.
	Cancel(ctx context.Context, appointmentID, patientID uuid.UUID) (bool, error)
}

// PatientLookup resolves the patient profile owned by a user account.
type PatientLookup interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*PatientRef, error)
}

// DoctorLookup resolves a doctor from the catalog.
type DoctorLookup interface {
	FindByID(ctx context.Context, doctorID uuid.UUID) (*DoctorRef, error)
}
