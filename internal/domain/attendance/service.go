package attendance

import "context"

// AttendanceService defines business logic for staff punch tracking.
type AttendanceService interface {
	// PunchIn opens today's attendance session for the authenticated staff
	// member, attributing it to a shift (with the early-arrival grace window)
	// and recording lateness against the shift's nominal start.
	PunchIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// PunchOut closes the open session and records early-out minutes against
	// the matched shift's nominal end.
	PunchOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// ListMyMonth returns the authenticated user's records for a month.
	ListMyMonth(ctx context.Context, year int, month int) ([]AttendanceResponse, error)
}
