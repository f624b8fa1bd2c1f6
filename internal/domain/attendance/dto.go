package attendance

import (
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
)

// PunchRequest carries an optional override clock time; when empty, the
// service stamps the current wall clock.
type PunchRequest struct {
	Time string `json:"time,omitempty"` // "15:04", optional
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Time != "" {
		if _, err := staff.ParseClock(r.Time); err != nil {
			errs = append(errs, validator.ValidationError{Field: "time", Message: "must be a valid clock time"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"`
	TimeIn          string  `json:"time_in"`
	TimeOut         *string `json:"time_out,omitempty"`
	BranchID        string  `json:"branch_id"`
	Type            string  `json:"type"`
	ShiftIndex      *int    `json:"shift_index,omitempty"`
	LateMinutes     *int    `json:"late_minutes,omitempty"`
	EarlyOutMinutes *int    `json:"early_out_minutes,omitempty"`
}

// ToResponse maps an Attendance entity to its API shape.
func ToResponse(a Attendance) AttendanceResponse {
	var timeOut *string
	if a.TimeOut != nil {
		formatted := staff.FormatClock(*a.TimeOut)
		timeOut = &formatted
	}
	return AttendanceResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		Date:            a.Date.Format("2006-01-02"),
		TimeIn:          staff.FormatClock(a.TimeIn),
		TimeOut:         timeOut,
		BranchID:        a.BranchID,
		Type:            string(a.Type),
		ShiftIndex:      a.ShiftIndex,
		LateMinutes:     a.LateMinutes,
		EarlyOutMinutes: a.EarlyOutMinutes,
	}
}
