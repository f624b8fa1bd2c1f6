package staff

import (
	"errors"

	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	FullName             string         `json:"full_name"`
	Email                string         `json:"email"`
	Password             string         `json:"password"`
	BranchID             string         `json:"branch_id"`
	Role                 string         `json:"role"`
	HourlyRate           *string        `json:"hourly_rate,omitempty"`
	CommissionPercentage string         `json:"commission_percentage,omitempty"`
	WeekOffDay           int            `json:"week_off_day"`
	Shifts               []ShiftPayload `json:"shifts"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be TRAINER, MANAGER or RECEPTIONIST"})
	}
	if r.HourlyRate != nil {
		if _, err := decimal.NewFromString(*r.HourlyRate); err != nil {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be a decimal number"})
		}
	}
	if r.CommissionPercentage != "" {
		if _, err := decimal.NewFromString(r.CommissionPercentage); err != nil {
			errs = append(errs, validator.ValidationError{Field: "commission_percentage", Message: "must be a decimal number"})
		}
	}
	if r.WeekOffDay < 0 || r.WeekOffDay > 6 {
		errs = append(errs, validator.ValidationError{Field: "week_off_day", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}

	shiftsReq := UpdateShiftsRequest{Shifts: r.Shifts}
	if err := shiftsReq.Validate(); err != nil {
		var shiftErrs validator.ValidationErrors
		if errors.As(err, &shiftErrs) {
			errs = append(errs, shiftErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftPayload struct {
	Start string `json:"start"` // "09:00" or "09:00 AM"
	End   string `json:"end"`
}

// UpdateShiftsRequest replaces a staff member's declared working windows.
// Shift well-formedness (start < end) is enforced here, at the profile
// boundary, so the scheduling core can assume valid half-open intervals.
type UpdateShiftsRequest struct {
	ID     string
	Shifts []ShiftPayload `json:"shifts"`
}

func (r *UpdateShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{Field: "shifts", Message: "at least one shift is required"})
	}
	if len(r.Shifts) > MaxShiftsPerStaff {
		errs = append(errs, validator.ValidationError{Field: "shifts", Message: "at most 3 shifts are allowed"})
	}

	for i, p := range r.Shifts {
		field := "shifts[" + validator.Itoa(i) + "]"
		start, err := ParseClock(p.Start)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".start", Message: "invalid clock time"})
			continue
		}
		end, err := ParseClock(p.End)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".end", Message: "invalid clock time"})
			continue
		}
		if start >= end {
			errs = append(errs, validator.ValidationError{Field: field, Message: "start must be before end"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToShifts converts the payload to domain shifts. Call Validate first.
func (r *UpdateShiftsRequest) ToShifts() []Shift {
	shifts := make([]Shift, 0, len(r.Shifts))
	for _, p := range r.Shifts {
		start, err := ParseClock(p.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(p.End)
		if err != nil {
			continue
		}
		shifts = append(shifts, Shift{Start: start, End: end})
	}
	return shifts
}

type StaffResponse struct {
	ID                   string           `json:"id"`
	FullName             string           `json:"full_name"`
	Email                string           `json:"email"`
	BranchID             string           `json:"branch_id"`
	Role                 string           `json:"role"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	CommissionPercentage decimal.Decimal  `json:"commission_percentage"`
	WeekOffDay           int              `json:"week_off_day"`
	Shifts               []ShiftPayload   `json:"shifts"`
}

// ToResponse maps a Staff entity to its API shape.
func ToResponse(s Staff) StaffResponse {
	shifts := make([]ShiftPayload, 0, len(s.Shifts))
	for _, sh := range s.Shifts {
		shifts = append(shifts, ShiftPayload{Start: FormatClock(sh.Start), End: FormatClock(sh.End)})
	}
	return StaffResponse{
		ID:                   s.ID,
		FullName:             s.FullName,
		Email:                s.Email,
		BranchID:             s.BranchID,
		Role:                 string(s.Role),
		HourlyRate:           s.HourlyRate,
		CommissionPercentage: s.CommissionPercentage,
		WeekOffDay:           int(s.WeekOffDay),
		Shifts:               shifts,
	}
}
