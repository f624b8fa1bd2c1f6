package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrNotATrainer   = errors.New("staff member is not a trainer")
	ErrEmailExists   = errors.New("email already registered")
)
