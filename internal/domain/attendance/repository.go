package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetOpenForUser returns the user's open session (no time out) for a day.
	// Returns ErrAttendanceNotFound when there is none.
	GetOpenForUser(ctx context.Context, userID string, date time.Time) (Attendance, error)

	Update(ctx context.Context, a Attendance) error

	// ListForUserMonth returns a user's records within a calendar month,
	// ordered by date, for payroll aggregation.
	ListForUserMonth(ctx context.Context, userID string, year int, month time.Month) ([]Attendance, error)
}
