package schedule

import (
	"fmt"
	"math"
	"time"

	"washhub/models"
)

const (
	// MinutesPerDay is the number of minutes in one schedule day.
	MinutesPerDay = 24 * 60

	// DefaultGridMinutes is the snap granularity all block boundaries are
	// rounded to unless a caller passes its own.
	DefaultGridMinutes = 30
)

// ParseTimeOfDay validates an HH:MM string and returns it in canonical
// zero-padded form. Anything else fails with ErrInvalidFormat.
func ParseTimeOfDay(s string) (models.TimeOfDay, error) {
	mins, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return fromMinutes(mins), nil
}

// Minutes converts a time of day to minutes from midnight.
func Minutes(t models.TimeOfDay) (int, error) {
	return parseClock(string(t))
}

// ToFraction maps a time of day to its position within the day, in [0, 1).
func ToFraction(t models.TimeOfDay) (float64, error) {
	mins, err := Minutes(t)
	if err != nil {
		return 0, err
	}
	return float64(mins) / MinutesPerDay, nil
}

// FromFraction maps a day fraction back to a clock time, rounding to the
// nearest multiple of gridMinutes. Fractions at or beyond the end of the day
// clamp to 23:59; blocks never cross midnight.
func FromFraction(f float64, gridMinutes int) models.TimeOfDay {
	if gridMinutes <= 0 {
		gridMinutes = DefaultGridMinutes
	}
	mins := int(math.Round(f*MinutesPerDay/float64(gridMinutes))) * gridMinutes
	if mins < 0 {
		mins = 0
	}
	if mins >= MinutesPerDay {
		mins = MinutesPerDay - 1
	}
	return fromMinutes(mins)
}

// AddMinutes shifts a time of day by mins, wrapping within the 24h day.
func AddMinutes(t models.TimeOfDay, mins int) (models.TimeOfDay, error) {
	m, err := Minutes(t)
	if err != nil {
		return "", err
	}
	m = (m + mins) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fromMinutes(m), nil
}

// EndOfService derives a job's end time from its start plus the service
// duration. The result saturates at 23:59 instead of wrapping; a job cannot
// run past the end of its calendar day.
func EndOfService(start models.TimeOfDay, durationMinutes int) (models.TimeOfDay, error) {
	m, err := Minutes(start)
	if err != nil {
		return "", err
	}
	m += durationMinutes
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	if m < 0 {
		m = 0
	}
	return fromMinutes(m), nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse(models.TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func fromMinutes(mins int) models.TimeOfDay {
	return models.TimeOfDay(fmt.Sprintf("%02d:%02d", mins/60, mins%60))
}
