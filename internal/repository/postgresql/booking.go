package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `b.id, b.member_id, b.trainer_id, b.type, b.date, b.time_slot,
	   b.branch_id, b.status, b.created_at, b.updated_at,
	   m.full_name AS member_name, t.full_name AS trainer_name`

const bookingJoins = `
		FROM bookings b
		LEFT JOIN members m ON m.id = b.member_id
		LEFT JOIN staff t ON t.id = b.trainer_id`

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.MemberID, &b.TrainerID, &b.Type, &b.Date, &b.TimeSlot,
		&b.BranchID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.MemberName, &b.TrainerName,
	)
	return b, err
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// Create implements booking.BookingRepository.
func (r *bookingRepository) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	b.ID = uuid.NewString()

	query := `
		INSERT INTO bookings (id, member_id, trainer_id, type, date, time_slot, branch_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.MemberID, b.TrainerID, b.Type, b.Date, b.TimeSlot, b.BranchID, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return b, nil
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepository) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`

	b, err := scanBooking(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// ListForTrainerDate implements booking.BookingRepository.
func (r *bookingRepository) ListForTrainerDate(ctx context.Context, trainerID string, date time.Time) ([]booking.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.trainer_id = $1 AND b.date = $2
		ORDER BY b.time_slot, b.created_at`

	result, err := r.queryBookings(ctx, query, trainerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainer bookings for date: %w", err)
	}
	return result, nil
}

// ListForTrainerSlot implements booking.BookingRepository.
func (r *bookingRepository) ListForTrainerSlot(ctx context.Context, trainerID string, date time.Time, timeSlot string) ([]booking.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.trainer_id = $1 AND b.date = $2 AND b.time_slot = $3
		ORDER BY b.created_at`

	result, err := r.queryBookings(ctx, query, trainerID, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to list slot bookings: %w", err)
	}
	return result, nil
}

// CountMemberBookings implements booking.BookingRepository.
func (r *bookingRepository) CountMemberBookings(ctx context.Context, memberID string, t booking.SessionType, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE member_id = $1
		  AND type = $2
		  AND date BETWEEN $3 AND $4
		  AND status <> $5
	`

	var count int
	err := q.QueryRow(ctx, query, memberID, t, from, to, booking.StatusCancelled).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count member bookings: %w", err)
	}
	return count, nil
}

// ListCompletedForTrainerMonth implements booking.BookingRepository.
func (r *bookingRepository) ListCompletedForTrainerMonth(ctx context.Context, trainerID string, year int, month time.Month) ([]booking.Booking, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.trainer_id = $1
		  AND b.status = $2
		  AND b.date >= $3 AND b.date < $4
		ORDER BY b.date, b.time_slot`

	result, err := r.queryBookings(ctx, query, trainerID, booking.StatusCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}
	return result, nil
}

// ListForMember implements booking.BookingRepository.
func (r *bookingRepository) ListForMember(ctx context.Context, memberID string) ([]booking.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.member_id = $1
		ORDER BY b.date DESC, b.time_slot`

	result, err := r.queryBookings(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member bookings: %w", err)
	}
	return result, nil
}

// UpdateStatus implements booking.BookingRepository.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status booking.BookingStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

// LockSlot implements booking.BookingRepository. It takes a transaction-scoped
// advisory lock keyed by the grid cell, so two commits targeting the same
// trainer/date/slot serialize and the loser re-reads a booking set that
// already includes the winner's row. The lock releases on commit or rollback.
func (r *bookingRepository) LockSlot(ctx context.Context, trainerID string, date time.Time, timeSlot string) error {
	q := GetQuerier(ctx, r.db)

	key := fmt.Sprintf("%s|%s|%s", trainerID, date.Format("2006-01-02"), timeSlot)

	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key)
	if err != nil {
		return fmt.Errorf("failed to acquire slot lock: %w", err)
	}
	return nil
}
