package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityQueryValidate(t *testing.T) {
	valid := AvailabilityQuery{TrainerID: "trainer-1", Date: "2026-03-02", Type: "PT"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		query AvailabilityQuery
	}{
		{"missing trainer", AvailabilityQuery{Date: "2026-03-02", Type: "PT"}},
		{"bad date", AvailabilityQuery{TrainerID: "t", Date: "03/02/2026", Type: "PT"}},
		{"bad type", AvailabilityQuery{TrainerID: "t", Date: "2026-03-02", Type: "YOGA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.query.Validate())
		})
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	valid := CreateBookingRequest{
		TrainerID: "trainer-1",
		Date:      "2026-03-02",
		TimeSlot:  "09:00 AM",
		Type:      "GROUP",
	}
	assert.NoError(t, valid.Validate())

	t.Run("slot must be on the grid", func(t *testing.T) {
		req := valid
		req.TimeSlot = "09:30 AM"
		assert.Error(t, req.Validate())

		req.TimeSlot = "10:00 PM" // past the last 09:00 PM slot
		assert.Error(t, req.Validate())
	})

	t.Run("type must be PT or GROUP", func(t *testing.T) {
		req := valid
		req.Type = "group"
		assert.Error(t, req.Validate())
	})
}
