package care

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownStatus    = errors.New("unknown status")
	ErrInvalidAge       = errors.New("age must be a non-negative whole number")
	ErrInvalidDate      = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("time of day must be formatted HH:MM")
	ErrNoTimesOfDay     = errors.New("at least one time of day is required")
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// NormalizeTimeOfDay accepts "9:00" or "09:00" and returns the zero-padded
// 24-hour form, which keeps lexicographic comparison meaningful.
func NormalizeTimeOfDay(v string) (string, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(v))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, v)
	}
	return t.Format(TimeOfDayLayout), nil
}

// SplitTimesOfDay turns "08:00, 20:00" into a normalized sequence.
// Blank entries are dropped.
func SplitTimesOfDay(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := NormalizeTimeOfDay(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrNoTimesOfDay
	}
	return out, nil
}

func JoinTimesOfDay(times []string) string {
	return strings.Join(times, ", ")
}

func checkDate(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return "", fmt.Errorf("%s: %w", field, ErrInvalidDate)
	}
	return v, nil
}

func parseAge(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, v)
	}
	return n, nil
}
