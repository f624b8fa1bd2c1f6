package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateShiftsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		shifts  []ShiftPayload
		wantErr bool
	}{
		{
			name:   "single valid shift",
			shifts: []ShiftPayload{{Start: "09:00", End: "17:00"}},
		},
		{
			name: "three shifts with 12-hour clock",
			shifts: []ShiftPayload{
				{Start: "06:00 AM", End: "10:00 AM"},
				{Start: "12:00 PM", End: "03:00 PM"},
				{Start: "05:00 PM", End: "09:00 PM"},
			},
		},
		{
			name:    "no shifts",
			shifts:  nil,
			wantErr: true,
		},
		{
			name: "more than three shifts",
			shifts: []ShiftPayload{
				{Start: "06:00", End: "08:00"},
				{Start: "09:00", End: "11:00"},
				{Start: "12:00", End: "14:00"},
				{Start: "15:00", End: "17:00"},
			},
			wantErr: true,
		},
		{
			name:    "start equals end",
			shifts:  []ShiftPayload{{Start: "09:00", End: "09:00"}},
			wantErr: true,
		},
		{
			name:    "start after end",
			shifts:  []ShiftPayload{{Start: "17:00", End: "09:00"}},
			wantErr: true,
		},
		{
			name:    "unparseable clock time",
			shifts:  []ShiftPayload{{Start: "nine", End: "17:00"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := UpdateShiftsRequest{ID: "staff-1", Shifts: tt.shifts}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateShiftsRequestToShifts(t *testing.T) {
	req := UpdateShiftsRequest{Shifts: []ShiftPayload{
		{Start: "09:00", End: "05:00 PM"},
		{Start: "06:00 PM", End: "09:00 PM"},
	}}
	require.NoError(t, req.Validate())

	shifts := req.ToShifts()

	require.Len(t, shifts, 2)
	assert.Equal(t, Shift{Start: 540, End: 1020}, shifts[0])
	assert.Equal(t, Shift{Start: 1080, End: 1260}, shifts[1])
}

func TestCreateStaffRequestValidate(t *testing.T) {
	valid := func() CreateStaffRequest {
		return CreateStaffRequest{
			FullName: "Alex",
			Email:    "alex@fitcore.local",
			Password: "supersecret",
			BranchID: "branch-1",
			Role:     string(RoleTrainer),
			Shifts:   []ShiftPayload{{Start: "09:00", End: "17:00"}},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("bad role", func(t *testing.T) {
		req := valid()
		req.Role = "JANITOR"
		assert.Error(t, req.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		req := valid()
		req.Password = "short"
		assert.Error(t, req.Validate())
	})

	t.Run("non-decimal hourly rate", func(t *testing.T) {
		req := valid()
		rate := "abc"
		req.HourlyRate = &rate
		assert.Error(t, req.Validate())
	})

	t.Run("week off day out of range", func(t *testing.T) {
		req := valid()
		req.WeekOffDay = 7
		assert.Error(t, req.Validate())
	})
}
