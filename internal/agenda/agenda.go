// Package agenda derives the "needs attention now" views from store
// snapshots. Everything here is a pure function of the records passed in and
// the reference instant; nothing is cached between calls.
package agenda

import (
	"sort"
	"time"

	"github.com/hackgods/care-console/internal/care"
)

const DefaultUpcomingLimit = 3

// ForDate returns the appointments booked on date (YYYY-MM-DD) in their
// store order. Status is not filtered, so cancelled visits stay visible.
func ForDate(appts []care.Appointment, date string) []care.Appointment {
	out := make([]care.Appointment, 0)
	for _, a := range appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// Today is ForDate for the calendar day of now, in now's location.
func Today(appts []care.Appointment, now time.Time) []care.Appointment {
	return ForDate(appts, now.Format(care.DateLayout))
}

type UpcomingOptions struct {
	Limit int // <= 0 means DefaultUpcomingLimit

	// SoonestFirst orders matches by their next dose before truncating.
	// Off by default, in which case the first matches in store order win.
	SoonestFirst bool
}

// Upcoming returns active medications that still have a dose later today
// than now. Times are compared as zero-padded HH:MM strings.
func Upcoming(meds []care.Medication, now time.Time, opts UpcomingOptions) []care.Medication {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	clock := now.Format(care.TimeOfDayLayout)

	type match struct {
		med  care.Medication
		next string
	}
	var matches []match
	for _, m := range meds {
		if m.Status != care.MedicationActive {
			continue
		}
		if next, ok := NextDose(m.TimesOfDay, clock); ok {
			matches = append(matches, match{med: m, next: next})
		}
	}

	if opts.SoonestFirst {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].next < matches[j].next
		})
	}

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]care.Medication, len(matches))
	for i, m := range matches {
		out[i] = m.med
	}
	return out
}

// NextDose returns the smallest entry of times that is strictly after clock.
func NextDose(times []string, clock string) (string, bool) {
	var next string
	found := false
	for _, t := range times {
		if t > clock && (!found || t < next) {
			next = t
			found = true
		}
	}
	return next, found
}
