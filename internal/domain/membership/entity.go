package membership

import (
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/shopspring/decimal"
)

// DefaultGroupCapacity applies when a GROUP plan does not set its own limit.
const DefaultGroupCapacity = 15

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusExpired   SubscriptionStatus = "EXPIRED"
	StatusCancelled SubscriptionStatus = "CANCELLED"
)

// Plan is a purchasable membership product of a single session type.
type Plan struct {
	ID            string
	Name          string
	Type          booking.SessionType
	MaxSessions   *int // nil = unlimited within the validity window
	GroupCapacity *int // GROUP plans only
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Capacity returns the per-slot class limit for GROUP plans.
func (p Plan) Capacity() int {
	if p.GroupCapacity != nil && *p.GroupCapacity > 0 {
		return *p.GroupCapacity
	}
	return DefaultGroupCapacity
}

// Subscription links a member to a plan for a validity window.
type Subscription struct {
	ID        string
	MemberID  string
	PlanID    string
	TrainerID *string
	StartDate time.Time
	EndDate   time.Time
	Status    SubscriptionStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	Plan *Plan
}

// CoversDate reports whether the validity window includes the given day.
func (s Subscription) CoversDate(day time.Time) bool {
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}
