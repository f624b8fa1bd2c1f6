package membership

import (
	"context"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
)

// SubscriptionRepository defines data access for subscriptions and their plans.
type SubscriptionRepository interface {
	// FindActiveByMemberAndType returns the member's ACTIVE subscription whose
	// plan type matches the requested session type and whose validity window
	// covers the given day. The joined Plan is always populated.
	// Returns ErrSubscriptionNotFound when no such subscription exists.
	FindActiveByMemberAndType(ctx context.Context, memberID string, t booking.SessionType, day time.Time) (Subscription, error)

	ListByMember(ctx context.Context, memberID string) ([]Subscription, error)

	// ExpireOverdue marks ACTIVE subscriptions whose end date has passed as
	// EXPIRED and returns how many rows changed. Run by the cron sweep.
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
