package holiday

import (
	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	BranchID string `json:"branch_id"` // "ALL" or a branch id
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "is required ('ALL' for every branch)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	BranchID string `json:"branch_id"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID,
		Name:     h.Name,
		Date:     h.Date.Format("2006-01-02"),
		BranchID: h.BranchID,
	}
}
