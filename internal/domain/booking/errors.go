package booking

import "errors"

// Booking domain errors. All are rejections surfaced to the caller with a
// distinguishable kind; none are used for normal control flow.
var (
	// Commit-time errors
	ErrSlotCollision          = errors.New("the selected slot was taken while you were booking, refresh and retry")
	ErrAlreadyJoined          = errors.New("you already have a booking in this slot")
	ErrCapacityExceeded       = errors.New("the group class is already at full capacity")
	ErrNoEligibleSubscription = errors.New("no active subscription covers this session type")
	ErrQuotaExhausted         = errors.New("all sessions allotted by the plan have been used")

	// General errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingAlreadyFinal = errors.New("booking has already been completed or cancelled")
)
