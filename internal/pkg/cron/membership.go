package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/membership"
)

// MembershipJobs contains membership-related cron jobs
type MembershipJobs struct {
	subscriptionRepo membership.SubscriptionRepository
}

// NewMembershipJobs creates membership cron jobs
func NewMembershipJobs(subscriptionRepo membership.SubscriptionRepository) *MembershipJobs {
	return &MembershipJobs{
		subscriptionRepo: subscriptionRepo,
	}
}

// RegisterJobs registers all membership-related cron jobs
func (j *MembershipJobs) RegisterJobs(scheduler *Scheduler) {
	// Mark overdue subscriptions expired every hour
	scheduler.AddJob(
		"expire_overdue_subscriptions",
		1*time.Hour,
		j.ExpireOverdueSubscriptions,
	)
}

// ExpireOverdueSubscriptions marks ACTIVE subscriptions past their end date
// as EXPIRED so they stop satisfying booking eligibility checks.
func (j *MembershipJobs) ExpireOverdueSubscriptions(ctx context.Context) error {
	expired, err := j.subscriptionRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("Expired overdue subscriptions", "count", expired)
	}
	return nil
}
