package report

import (
	"sort"
	"time"

	"github.com/hackgods/care-console/internal/agenda"
	"github.com/hackgods/care-console/internal/care"
	"github.com/hackgods/care-console/internal/console"
)

type EmployeeCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type Summary struct {
	GeneratedAt          time.Time                      `json:"generatedAt"`
	Employees            EmployeeCounts                 `json:"employees"`
	Residents            int                            `json:"residents"`
	ResidentsByCondition map[string]int                 `json:"residentsByCondition"`
	Appointments         int                            `json:"appointments"`
	AppointmentsByStatus map[care.AppointmentStatus]int `json:"appointmentsByStatus"`
	AppointmentsByType   map[string]int                 `json:"appointmentsByType"`
	AppointmentsByMonth  []MonthCount                   `json:"appointmentsByMonth"`
	Medications          int                            `json:"medications"`
	MedicationsByStatus  map[care.MedicationStatus]int  `json:"medicationsByStatus"`
	AgendaToday          int                            `json:"agendaToday"`
	UpcomingMedications  int                            `json:"upcomingMedications"`
}

// Summarize counts a snapshot. Today's agenda and upcoming medications are
// evaluated against snap.TakenAt.
func Summarize(snap console.Snapshot) Summary {
	s := Summary{
		GeneratedAt:          snap.TakenAt,
		Residents:            len(snap.Residents),
		ResidentsByCondition: make(map[string]int),
		Appointments:         len(snap.Appointments),
		AppointmentsByStatus: make(map[care.AppointmentStatus]int),
		AppointmentsByType:   make(map[string]int),
		Medications:          len(snap.Medications),
		MedicationsByStatus:  make(map[care.MedicationStatus]int),
	}

	for _, e := range snap.Employees {
		s.Employees.Total++
		if e.Active {
			s.Employees.Active++
		} else {
			s.Employees.Inactive++
		}
	}

	for _, r := range snap.Residents {
		if r.Condition != "" {
			s.ResidentsByCondition[r.Condition]++
		}
	}

	for _, st := range care.AppointmentStatuses {
		s.AppointmentsByStatus[st] = 0
	}
	months := make(map[string]int)
	for _, a := range snap.Appointments {
		s.AppointmentsByStatus[a.Status]++
		if a.Type != "" {
			s.AppointmentsByType[a.Type]++
		}
		if len(a.Date) >= 7 {
			months[a.Date[:7]]++
		}
	}
	s.AppointmentsByMonth = make([]MonthCount, 0, len(months))
	for m, n := range months {
		s.AppointmentsByMonth = append(s.AppointmentsByMonth, MonthCount{Month: m, Count: n})
	}
	sort.Slice(s.AppointmentsByMonth, func(i, j int) bool {
		return s.AppointmentsByMonth[i].Month < s.AppointmentsByMonth[j].Month
	})

	for _, st := range care.MedicationStatuses {
		s.MedicationsByStatus[st] = 0
	}
	for _, m := range snap.Medications {
		s.MedicationsByStatus[m.Status]++
	}

	s.AgendaToday = len(agenda.Today(snap.Appointments, snap.TakenAt))
	// Every match, not just the dashboard's first three.
	s.UpcomingMedications = len(agenda.Upcoming(snap.Medications, snap.TakenAt, agenda.UpcomingOptions{Limit: len(snap.Medications)}))

	return s
}
