package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyPunchedIn   = errors.New("an open attendance session already exists for today")
	ErrNotPunchedIn       = errors.New("no open attendance session to close")
	ErrOutsideShiftWindow = errors.New("punch time is outside every declared shift window")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
