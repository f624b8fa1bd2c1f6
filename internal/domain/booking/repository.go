package booking

import (
	"context"
	"time"
)

// BookingRepository defines data access methods for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b Booking) (Booking, error)

	GetByID(ctx context.Context, id string) (Booking, error)

	// ListForTrainerDate returns every booking (any status) for a trainer's day.
	ListForTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]Booking, error)

	// ListForTrainerSlot returns every booking (any status) in one grid cell.
	// The commit path calls this inside a transaction after LockSlot so the
	// read is no older than the immediately following insert.
	ListForTrainerSlot(ctx context.Context, trainerID string, date time.Time, timeSlot string) ([]Booking, error)

	// CountMemberBookings counts a member's non-cancelled bookings of a session
	// type with dates inside [from, to], for quota enforcement.
	CountMemberBookings(ctx context.Context, memberID string, t SessionType, from, to time.Time) (int, error)

	// ListCompletedForTrainerMonth returns COMPLETED sessions for commission.
	ListCompletedForTrainerMonth(ctx context.Context, trainerID string, year int, month time.Month) ([]Booking, error)

	ListForMember(ctx context.Context, memberID string) ([]Booking, error)

	UpdateStatus(ctx context.Context, id string, status BookingStatus) error

	// LockSlot serializes concurrent commits targeting the same
	// trainer/date/slot cell for the duration of the enclosing transaction.
	LockSlot(ctx context.Context, trainerID string, date time.Time, timeSlot string) error
}
