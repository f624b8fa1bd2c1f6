package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role of a staff member within a branch
type Role string

const (
	RoleTrainer      Role = "TRAINER"
	RoleManager      Role = "MANAGER"
	RoleReceptionist Role = "RECEPTIONIST"
)

var RoleValues = []string{
	string(RoleTrainer),
	string(RoleManager),
	string(RoleReceptionist),
}

type Staff struct {
	ID                   string
	FullName             string
	Email                string
	PasswordHash         string
	BranchID             string
	Role                 Role
	HourlyRate           *decimal.Decimal // nil falls back to the default rate at payroll time
	CommissionPercentage decimal.Decimal
	WeekOffDay           time.Weekday
	Shifts               []Shift
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
