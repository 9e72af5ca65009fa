package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/care-console/internal/agenda"
	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
)

func TestSample(t *testing.T) {
	c := console.New()
	Sample(c)

	assert.Equal(t, 3, c.Employees.Len())
	assert.Equal(t, 3, c.Residents.Len())
	assert.Equal(t, 3, c.Appointments.Len())
	assert.Equal(t, 3, c.Medications.Len())

	assert.Len(t, agenda.ForDate(c.Appointments.List(), "2024-06-25"), 3)

	evening := time.Date(2024, 6, 25, 19, 30, 0, 0, time.UTC)
	upcoming := agenda.Upcoming(c.Medications.List(), evening, agenda.UpcomingOptions{})
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Losartan", upcoming[0].Name)
}

func TestFake_Deterministic(t *testing.T) {
	today := time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC)

	a := console.New()
	Fake(a, 10, 42, today)
	b := console.New()
	Fake(b, 10, 42, today)

	require.Equal(t, 10, a.Residents.Len())
	require.Equal(t, 10, a.Medications.Len())

	names := func(c *console.Console) []string {
		var out []string
		for _, r := range c.Residents.List() {
			out = append(out, r.Name)
		}
		return out
	}
	assert.Equal(t, names(a), names(b))

	for _, m := range a.Medications.List() {
		assert.NotEmpty(t, m.TimesOfDay)
		assert.NotEqual(t, care.MedicationCompleted, m.Status)
	}
	for _, r := range a.Residents.List() {
		assert.GreaterOrEqual(t, r.Age, 65)
	}
}

func TestFake_Zero(t *testing.T) {
	c := console.New()
	Fake(c, 0, 1, time.Now())
	assert.Equal(t, 0, c.Appointments.Len())
}
