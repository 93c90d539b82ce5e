package schedule

import (
	"fmt"

	"serenia/models"
)

// MinutesPerDay is the wraparound modulus for neighbor-slot arithmetic.
const MinutesPerDay = 24 * 60

// ParseClock converts a "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to "HH:MM", folding
// out-of-range values into the same day. An offset computed before 00:00 or
// past 23:59 wraps to the other end of the day rather than spilling into the
// adjacent date.
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ShiftClock returns the wall-clock time offset minutes away from t, wrapping
// at midnight.
func ShiftClock(t string, offset int) (string, error) {
	base, err := ParseClock(t)
	if err != nil {
		return "", err
	}
	return FormatClock(base + offset), nil
}

// ValidGridTime reports whether s is a well-formed "HH:MM" time aligned to
// the scheduling granularity (minutes 00 or 30).
func ValidGridTime(s string) bool {
	minutes, err := ParseClock(s)
	if err != nil {
		return false
	}
	return minutes%models.SlotStepMinutes == 0
}

// ValidDuration reports whether d is one of the bookable session lengths.
func ValidDuration(d int) bool {
	for _, v := range models.DefaultDurations {
		if v == d {
			return true
		}
	}
	return false
}
