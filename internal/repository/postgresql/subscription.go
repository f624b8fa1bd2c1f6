package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/membership"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subscriptionRepository struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) membership.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

const subscriptionColumns = `s.id, s.member_id, s.plan_id, s.trainer_id,
	   s.start_date, s.end_date, s.status, s.created_at, s.updated_at,
	   p.id, p.name, p.type, p.max_sessions, p.group_capacity, p.price,
	   p.created_at, p.updated_at`

func scanSubscription(row pgx.Row) (membership.Subscription, error) {
	var (
		sub  membership.Subscription
		plan membership.Plan
	)
	err := row.Scan(
		&sub.ID, &sub.MemberID, &sub.PlanID, &sub.TrainerID,
		&sub.StartDate, &sub.EndDate, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt,
		&plan.ID, &plan.Name, &plan.Type, &plan.MaxSessions, &plan.GroupCapacity, &plan.Price,
		&plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return membership.Subscription{}, err
	}
	sub.Plan = &plan
	return sub, nil
}

// FindActiveByMemberAndType implements membership.SubscriptionRepository.
// When a member somehow holds several qualifying subscriptions, the one
// purchased most recently wins.
func (r *subscriptionRepository) FindActiveByMemberAndType(ctx context.Context, memberID string, t booking.SessionType, day time.Time) (membership.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.member_id = $1
		  AND s.status = $2
		  AND p.type = $3
		  AND s.start_date <= $4 AND s.end_date >= $4
		ORDER BY s.created_at DESC
		LIMIT 1
	`

	sub, err := scanSubscription(q.QueryRow(ctx, query, memberID, membership.StatusActive, t, day))
	if err != nil {
		if err == pgx.ErrNoRows {
			return membership.Subscription{}, membership.ErrSubscriptionNotFound
		}
		return membership.Subscription{}, fmt.Errorf("failed to find active subscription: %w", err)
	}
	return sub, nil
}

// ListByMember implements membership.SubscriptionRepository.
func (r *subscriptionRepository) ListByMember(ctx context.Context, memberID string) ([]membership.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.member_id = $1
		ORDER BY s.start_date DESC
	`

	rows, err := q.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member subscriptions: %w", err)
	}
	defer rows.Close()

	var result []membership.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscription rows: %w", err)
	}

	return result, nil
}

// ExpireOverdue implements membership.SubscriptionRepository.
func (r *subscriptionRepository) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscriptions
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_date < $3
	`

	tag, err := q.Exec(ctx, query, membership.StatusExpired, membership.StatusActive, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overdue subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}
