package console

import (
	"time"

	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/store"
)

// Console owns one independent store per entity kind. There is no
// cross-store transaction.
type Console struct {
	Employees    *care.EmployeeStore
	Residents    *care.ResidentStore
	Appointments *care.AppointmentStore
	Medications  *care.MedicationStore
}

func New(opts ...store.Option) *Console {
	return &Console{
		Employees:    care.NewEmployeeStore(opts...),
		Residents:    care.NewResidentStore(opts...),
		Appointments: care.NewAppointmentStore(opts...),
		Medications:  care.NewMedicationStore(opts...),
	}
}

// Snapshot is a point-in-time copy of every store, used by reports.
type Snapshot struct {
	TakenAt      time.Time
	Employees    []care.Employee
	Residents    []care.Resident
	Appointments []care.Appointment
	Medications  []care.Medication
}

func (c *Console) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		TakenAt:      now,
		Employees:    c.Employees.List(),
		Residents:    c.Residents.List(),
		Appointments: c.Appointments.List(),
		Medications:  c.Medications.List(),
	}
}

// SweepMedications completes active medications whose end date is before
// the calendar day of now.
func (c *Console) SweepMedications(now time.Time) []care.Medication {
	return care.CompleteEndedMedications(c.Medications, now.Format(care.DateLayout))
}
