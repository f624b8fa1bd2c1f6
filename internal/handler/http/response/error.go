package response

import (
	"errors"
	"net/http"

	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/auth"
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/holiday"
	"github.com/fitcore/gym-backend-go/internal/domain/membership"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid access token")

	// Booking domain errors. Commit-time rejections are conflicts between
	// the member's stale view and the current booking set, except eligibility
	// which is a plain precondition failure.
	case errors.Is(err, booking.ErrSlotCollision):
		Conflict(w, err.Error())
	case errors.Is(err, booking.ErrAlreadyJoined):
		Conflict(w, err.Error())
	case errors.Is(err, booking.ErrCapacityExceeded):
		Conflict(w, err.Error())
	case errors.Is(err, booking.ErrQuotaExhausted):
		Conflict(w, err.Error())
	case errors.Is(err, booking.ErrNoEligibleSubscription):
		Forbidden(w, err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrBookingAlreadyFinal):
		Conflict(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrNotATrainer):
		BadRequest(w, "The selected staff member is not a trainer", nil)
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Membership domain errors
	case errors.Is(err, membership.ErrSubscriptionNotFound):
		NotFound(w, "No matching subscription found")
	case errors.Is(err, membership.ErrPlanNotFound):
		NotFound(w, "Plan not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideShiftWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
