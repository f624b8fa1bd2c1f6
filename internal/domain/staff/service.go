package staff

import "context"

// StaffService defines business logic for staff profiles and shift windows.
type StaffService interface {
	// Create registers a staff member with a hashed password.
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)

	GetByID(ctx context.Context, id string) (StaffResponse, error)

	ListByBranch(ctx context.Context, branchID string) ([]StaffResponse, error)

	// UpdateShifts replaces the declared working windows after boundary
	// validation (1-3 shifts, start < end).
	UpdateShifts(ctx context.Context, req UpdateShiftsRequest) (StaffResponse, error)
}
