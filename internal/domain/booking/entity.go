package booking

import "time"

// SessionType distinguishes exclusive personal training from capacity-limited group classes.
type SessionType string

const (
	SessionPT    SessionType = "PT"
	SessionGroup SessionType = "GROUP"
)

var SessionTypeValues = []string{
	string(SessionPT),
	string(SessionGroup),
}

type BookingStatus string

const (
	StatusBooked    BookingStatus = "BOOKED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	ID        string
	MemberID  string
	TrainerID string
	Type      SessionType
	Date      time.Time // work day, midnight-truncated
	TimeSlot  string    // grid label, e.g. "06:00 AM"
	BranchID  string
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	MemberName  *string
	TrainerName *string
}

// Counts reports whether the booking participates in collision, capacity and
// quota checks. Cancelled bookings are excluded everywhere.
func (b Booking) Counts() bool {
	return b.Status != StatusCancelled
}
