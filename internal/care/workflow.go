package care

import (
	"fmt"

	"github.com/hackgods/care-console/internal/store"
)

// Status changes are an open assignment: any value in a kind's domain may
// replace any other. The functions below are the only place status is
// written after creation, so guard rules belong here.

func (s AppointmentStatus) Valid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseAppointmentStatus(v string) (AppointmentStatus, error) {
	s := AppointmentStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w for appointment: %q", ErrUnknownStatus, v)
	}
	return s, nil
}

func (s MedicationStatus) Valid() bool {
	for _, v := range MedicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseMedicationStatus(v string) (MedicationStatus, error) {
	s := MedicationStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w for medication: %q", ErrUnknownStatus, v)
	}
	return s, nil
}

// SetAppointmentStatus reports false when id is unknown; the store is left
// untouched in that case.
func SetAppointmentStatus(s *AppointmentStore, id int64, status AppointmentStatus) (Appointment, bool, error) {
	if !status.Valid() {
		return Appointment{}, false, fmt.Errorf("%w for appointment: %q", ErrUnknownStatus, status)
	}
	a, ok := s.Apply(id, store.ActionStatusChanged, func(a *Appointment) {
		a.Status = status
	})
	return a, ok, nil
}

func SetMedicationStatus(s *MedicationStore, id int64, status MedicationStatus) (Medication, bool, error) {
	if !status.Valid() {
		return Medication{}, false, fmt.Errorf("%w for medication: %q", ErrUnknownStatus, status)
	}
	m, ok := s.Apply(id, store.ActionStatusChanged, func(m *Medication) {
		m.Status = status
	})
	return m, ok, nil
}

// CompleteEndedMedications moves every active medication whose end date is
// before day (YYYY-MM-DD) to completed. Paused ones are left alone.
func CompleteEndedMedications(s *MedicationStore, day string) []Medication {
	var done []Medication
	for _, m := range s.List() {
		if m.Status != MedicationActive || m.EndDate == "" || m.EndDate >= day {
			continue
		}
		if updated, ok, _ := SetMedicationStatus(s, m.ID, MedicationCompleted); ok {
			done = append(done, updated)
		}
	}
	return done
}
