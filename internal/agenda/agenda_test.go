package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/care-console/internal/care"
)

func at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2024-06-25 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestForDate_IncludesCancelled(t *testing.T) {
	s := care.NewAppointmentStore()
	a := s.Create(care.AppointmentFields{PatientName: "Maria", Date: "2024-06-25", Time: "09:00"})
	s.Create(care.AppointmentFields{PatientName: "Antonio", Date: "2024-06-26", Time: "10:30"})
	b := s.Create(care.AppointmentFields{PatientName: "Jose", Date: "2024-06-25", Time: "14:00"})
	_, _, err := care.SetAppointmentStatus(s, b.ID, care.StatusCancelled)
	require.NoError(t, err)

	got := ForDate(s.List(), "2024-06-25")
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, care.StatusCancelled, got[1].Status)

	assert.Len(t, Today(s.List(), at("23:59")), 2)
	assert.Empty(t, ForDate(s.List(), "2024-06-27"))
}

func TestToday_UsesLocationOfReference(t *testing.T) {
	s := care.NewAppointmentStore()
	s.Create(care.AppointmentFields{PatientName: "Maria", Date: "2024-06-25"})

	// 01:00 UTC on the 26th is still the 25th in Sao Paulo.
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 6, 26, 1, 0, 0, 0, time.UTC).In(loc)
	assert.Len(t, Today(s.List(), now), 1)
}

func TestUpcoming_TimeWindow(t *testing.T) {
	s := care.NewMedicationStore()
	m := s.Create(care.MedicationFields{Name: "Losartan", TimesOfDay: []string{"08:00", "20:00"}})

	got := Upcoming(s.List(), at("19:00"), UpcomingOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, m.ID, got[0].ID)

	assert.Empty(t, Upcoming(s.List(), at("21:00"), UpcomingOptions{}))
	assert.Empty(t, Upcoming(s.List(), at("20:00"), UpcomingOptions{}), "a dose at exactly now is not upcoming")
}

func TestUpcoming_OnlyActive(t *testing.T) {
	s := care.NewMedicationStore()
	paused := s.Create(care.MedicationFields{Name: "Metformin", TimesOfDay: []string{"19:00"}})
	done := s.Create(care.MedicationFields{Name: "Simvastatin", TimesOfDay: []string{"22:00"}})
	_, _, err := care.SetMedicationStatus(s, paused.ID, care.MedicationPaused)
	require.NoError(t, err)
	_, _, err = care.SetMedicationStatus(s, done.ID, care.MedicationCompleted)
	require.NoError(t, err)

	assert.Empty(t, Upcoming(s.List(), at("07:00"), UpcomingOptions{}))
}

func TestUpcoming_LimitsToThreeInStoreOrder(t *testing.T) {
	s := care.NewMedicationStore()
	var ids []int64
	for _, tod := range []string{"23:00", "22:00", "21:00", "13:00", "12:30"} {
		ids = append(ids, s.Create(care.MedicationFields{Name: "med " + tod, TimesOfDay: []string{tod}}).ID)
	}

	got := Upcoming(s.List(), at("12:00"), UpcomingOptions{})
	require.Len(t, got, DefaultUpcomingLimit)
	assert.Equal(t, ids[:3], []int64{got[0].ID, got[1].ID, got[2].ID})

	got = Upcoming(s.List(), at("12:00"), UpcomingOptions{Limit: 10})
	assert.Len(t, got, 5)
}

func TestUpcoming_SoonestFirst(t *testing.T) {
	s := care.NewMedicationStore()
	late := s.Create(care.MedicationFields{Name: "late", TimesOfDay: []string{"08:00", "23:00"}})
	soon := s.Create(care.MedicationFields{Name: "soon", TimesOfDay: []string{"12:30"}})
	mid := s.Create(care.MedicationFields{Name: "mid", TimesOfDay: []string{"18:00", "11:00"}})

	got := Upcoming(s.List(), at("12:00"), UpcomingOptions{Limit: 2, SoonestFirst: true})
	require.Len(t, got, 2)
	assert.Equal(t, soon.ID, got[0].ID)
	assert.Equal(t, mid.ID, got[1].ID)
	assert.NotEqual(t, late.ID, got[1].ID)
}

func TestNextDose(t *testing.T) {
	next, ok := NextDose([]string{"20:00", "08:00", "13:00"}, "12:00")
	require.True(t, ok)
	assert.Equal(t, "13:00", next)

	_, ok = NextDose([]string{"08:00"}, "12:00")
	assert.False(t, ok)
}

func TestQueries_ReflectMutations(t *testing.T) {
	s := care.NewAppointmentStore()
	a := s.Create(care.AppointmentFields{Date: "2024-06-25"})
	require.Len(t, ForDate(s.List(), "2024-06-25"), 1)

	s.Delete(a.ID)
	assert.Empty(t, ForDate(s.List(), "2024-06-25"))
}
