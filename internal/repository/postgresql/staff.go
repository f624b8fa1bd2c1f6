package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, email, password_hash, branch_id, role,
	   hourly_rate, commission_percentage, week_off_day, shifts,
	   created_at, updated_at`

// scanStaff reads one staff row. Shifts are stored as a JSONB array so the
// declaration order, which resolves overlapping shift matches, survives the
// round trip.
func scanStaff(row pgx.Row) (staff.Staff, error) {
	var (
		s          staff.Staff
		weekOffDay int
		shiftsJSON []byte
	)
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.BranchID, &s.Role,
		&s.HourlyRate, &s.CommissionPercentage, &weekOffDay, &shiftsJSON,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, err
	}

	s.WeekOffDay = time.Weekday(weekOffDay)
	if len(shiftsJSON) > 0 {
		if err := json.Unmarshal(shiftsJSON, &s.Shifts); err != nil {
			return staff.Staff{}, fmt.Errorf("failed to decode shifts: %w", err)
		}
	}
	return s, nil
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	shiftsJSON, err := json.Marshal(s.Shifts)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to encode shifts: %w", err)
	}

	s.ID = uuid.NewString()

	query := `
		INSERT INTO staff (
			id, full_name, email, password_hash, branch_id, role,
			hourly_rate, commission_percentage, week_off_day, shifts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		s.ID, s.FullName, s.Email, s.PasswordHash, s.BranchID, s.Role,
		s.HourlyRate, s.CommissionPercentage, int(s.WeekOffDay), shiftsJSON,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrEmailExists
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return s, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	s, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by id: %w", err)
	}
	return s, nil
}

// GetByEmail implements staff.StaffRepository.
func (r *staffRepository) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`

	s, err := scanStaff(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by email: %w", err)
	}
	return s, nil
}

// ListByBranch implements staff.StaffRepository.
func (r *staffRepository) ListByBranch(ctx context.Context, branchID string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE branch_id = $1 ORDER BY full_name`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff by branch: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff rows: %w", err)
	}

	return result, nil
}

// UpdateShifts implements staff.StaffRepository.
func (r *staffRepository) UpdateShifts(ctx context.Context, id string, shifts []staff.Shift) error {
	q := GetQuerier(ctx, r.db)

	shiftsJSON, err := json.Marshal(shifts)
	if err != nil {
		return fmt.Errorf("failed to encode shifts: %w", err)
	}

	query := `UPDATE staff SET shifts = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, shiftsJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update shifts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}
