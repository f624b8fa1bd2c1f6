package staff

import "context"

// StaffRepository defines data access methods for staff records.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)

	GetByID(ctx context.Context, id string) (Staff, error)

	GetByEmail(ctx context.Context, email string) (Staff, error)

	ListByBranch(ctx context.Context, branchID string) ([]Staff, error)

	// UpdateShifts replaces the declared working windows of a staff member.
	UpdateShifts(ctx context.Context, id string, shifts []Shift) error
}
