package booking

import (
	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
)

// Reasons a displayed slot is not bookable.
const (
	ReasonPrivateSession = "PRIVATE SESSION"
	ReasonGroupClass     = "GROUP CLASS"
	ReasonAlreadyJoined  = "ALREADY JOINED"
	ReasonClassFull      = "CLASS FULL"
)

// SlotAvailability annotates one grid slot for display. Slots outside the
// trainer's shift windows are never emitted at all.
type SlotAvailability struct {
	Slot      string  `json:"slot"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
	Count     *int    `json:"count,omitempty"`
	Capacity  *int    `json:"capacity,omitempty"`
}

type AvailabilityQuery struct {
	TrainerID string
	Date      string // "2006-01-02"
	Type      string
}

func (q *AvailabilityQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.TrainerID) {
		errs = append(errs, validator.ValidationError{Field: "trainer_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(q.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(q.Type, SessionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'PT' or 'GROUP'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateBookingRequest struct {
	TrainerID string `json:"trainer_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Type      string `json:"type"`
}

func (r *CreateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TrainerID) {
		errs = append(errs, validator.ValidationError{Field: "trainer_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.TimeSlot) {
		errs = append(errs, validator.ValidationError{Field: "time_slot", Message: "is required"})
	} else if _, ok := SlotByLabel(r.TimeSlot); !ok {
		errs = append(errs, validator.ValidationError{Field: "time_slot", Message: "is not a valid grid slot"})
	}
	if !validator.IsInSlice(r.Type, SessionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'PT' or 'GROUP'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BookingResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	MemberName  *string `json:"member_name,omitempty"`
	TrainerID   string  `json:"trainer_id"`
	TrainerName *string `json:"trainer_name,omitempty"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"time_slot"`
	BranchID    string  `json:"branch_id"`
	Status      string  `json:"status"`
}

// ToResponse maps a Booking entity to its API shape.
func ToResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		MemberID:    b.MemberID,
		MemberName:  b.MemberName,
		TrainerID:   b.TrainerID,
		TrainerName: b.TrainerName,
		Type:        string(b.Type),
		Date:        b.Date.Format("2006-01-02"),
		TimeSlot:    b.TimeSlot,
		BranchID:    b.BranchID,
		Status:      string(b.Status),
	}
}
