package staff

import (
	"fmt"
	"strconv"
	"strings"
)

// EarlyGraceMinutes is how early a staff member may punch in before the
// nominal shift start and still have the attendance attributed to that shift.
const EarlyGraceMinutes = 30

// MaxShiftsPerStaff limits how many daily working windows a staff member can declare.
const MaxShiftsPerStaff = 3

// Shift is a daily working window in minutes since midnight, half-open [Start, End).
// The core assumes Start < End; the staff-profile DTO validates this at the boundary.
type Shift struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether a clock time falls inside the working window.
func (s Shift) Contains(t int) bool {
	return t >= s.Start && t < s.End
}

// Matches reports whether a punch time is attributable to this shift:
// within the early-arrival grace before Start, or any time up to and including End.
func (s Shift) Matches(t int) bool {
	return t >= s.Start-EarlyGraceMinutes && t <= s.End
}

// MatchShift returns the first shift in declaration order that the punch time
// is attributable to. Overlapping shifts are resolved by list order only.
func MatchShift(shifts []Shift, t int) (Shift, int, bool) {
	for i, s := range shifts {
		if s.Matches(t) {
			return s, i, true
		}
	}
	return Shift{}, -1, false
}

// ParseClock parses a wall-clock time into minutes since midnight.
// Accepts 24-hour "15:04" and 12-hour "03:04 PM" forms.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)

	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in clock time %q", s)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in clock time %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in clock time %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour out of range in clock time %q", s)
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as a 24-hour "15:04" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
