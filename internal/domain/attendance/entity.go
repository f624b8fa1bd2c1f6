package attendance

import (
	"time"
)

type AttendanceType string

const (
	TypeMember AttendanceType = "MEMBER"
	TypeStaff  AttendanceType = "STAFF"
)

// Attendance is one check-in/check-out pair. For STAFF records the punch
// times are matched against the user's shifts for payroll attribution; a
// record with no TimeOut is an open session and contributes zero hours.
type Attendance struct {
	ID       string
	UserID   string
	Date     time.Time // work day, midnight-truncated
	TimeIn   int       // minutes since midnight
	TimeOut  *int
	BranchID string
	Type     AttendanceType

	// Derived at punch time from the matched shift; nil when no shift matched.
	ShiftIndex      *int
	LateMinutes     *int
	EarlyOutMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
