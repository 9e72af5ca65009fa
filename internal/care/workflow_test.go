package care

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecords_StartInInitialStatus(t *testing.T) {
	appts := NewAppointmentStore()
	meds := NewMedicationStore()
	staff := NewEmployeeStore()

	assert.Equal(t, StatusScheduled, appts.Create(AppointmentFields{PatientName: "Maria"}).Status)
	assert.Equal(t, MedicationActive, meds.Create(MedicationFields{Name: "Losartan", TimesOfDay: []string{"08:00"}}).Status)
	assert.True(t, staff.Create(EmployeeFields{Name: "Ana"}).Active)
}

func TestSetAppointmentStatus_ChangesOnlyStatus(t *testing.T) {
	s := NewAppointmentStore()
	a := s.Create(AppointmentFields{PatientName: "Maria", StaffName: "Dr. Santos", Date: "2024-06-25", Time: "09:00", Type: "Follow-up"})

	for _, next := range []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusScheduled, StatusCancelled} {
		got, ok, err := SetAppointmentStatus(s, a.ID, next)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, next, got.Status)
		assert.Equal(t, a.AppointmentFields, got.AppointmentFields)
	}
}

func TestSetAppointmentStatus_RejectsUnknownValue(t *testing.T) {
	s := NewAppointmentStore()
	a := s.Create(AppointmentFields{PatientName: "Maria"})

	_, ok, err := SetAppointmentStatus(s, a.ID, "rescheduled")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStatus))
	assert.False(t, ok)

	got, _ := s.Get(a.ID)
	assert.Equal(t, StatusScheduled, got.Status)
}

func TestSetAppointmentStatus_UnknownIDIsNoop(t *testing.T) {
	s := NewAppointmentStore()
	s.Create(AppointmentFields{PatientName: "Maria"})

	_, ok, err := SetAppointmentStatus(s, 1, StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetMedicationStatus_TogglesPause(t *testing.T) {
	s := NewMedicationStore()
	m := s.Create(MedicationFields{Name: "Metformin", TimesOfDay: []string{"12:00", "19:00"}})

	got, ok, err := SetMedicationStatus(s, m.ID, MedicationPaused)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, MedicationPaused, got.Status)
	assert.Equal(t, []string{"12:00", "19:00"}, got.TimesOfDay)

	got, _, err = SetMedicationStatus(s, m.ID, MedicationActive)
	require.NoError(t, err)
	assert.Equal(t, MedicationActive, got.Status)

	_, _, err = SetMedicationStatus(s, m.ID, "finished")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseAppointmentStatus("CONFIRMED")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	m, err := ParseMedicationStatus("paused")
	require.NoError(t, err)
	assert.Equal(t, MedicationPaused, m)
}

func TestToggleActive(t *testing.T) {
	s := NewEmployeeStore()
	e := s.Create(EmployeeFields{Name: "Ana Costa", Role: "Physiotherapist"})

	got, ok := ToggleActive(s, e.ID)
	require.True(t, ok)
	assert.False(t, got.Active)
	assert.Equal(t, e.EmployeeFields, got.EmployeeFields)

	got, _ = ToggleActive(s, e.ID)
	assert.True(t, got.Active)

	_, ok = ToggleActive(s, e.ID+1000)
	assert.False(t, ok)
}

func TestCompleteEndedMedications(t *testing.T) {
	s := NewMedicationStore()
	ended := s.Create(MedicationFields{Name: "Simvastatin", TimesOfDay: []string{"22:00"}, EndDate: "2024-06-15"})
	running := s.Create(MedicationFields{Name: "Losartan", TimesOfDay: []string{"08:00"}, EndDate: "2024-06-30"})
	open := s.Create(MedicationFields{Name: "Vitamin D", TimesOfDay: []string{"08:00"}})
	paused := s.Create(MedicationFields{Name: "Metformin", TimesOfDay: []string{"12:00"}, EndDate: "2024-06-01"})
	_, _, err := SetMedicationStatus(s, paused.ID, MedicationPaused)
	require.NoError(t, err)

	done := CompleteEndedMedications(s, "2024-06-25")
	require.Len(t, done, 1)
	assert.Equal(t, ended.ID, done[0].ID)

	statuses := map[int64]MedicationStatus{}
	for _, m := range s.List() {
		statuses[m.ID] = m.Status
	}
	assert.Equal(t, MedicationCompleted, statuses[ended.ID])
	assert.Equal(t, MedicationActive, statuses[running.ID])
	assert.Equal(t, MedicationActive, statuses[open.ID])
	assert.Equal(t, MedicationPaused, statuses[paused.ID])
}
