package holiday

import "time"

// BranchAll marks a holiday that applies to every branch.
const BranchAll = "ALL"

// Holiday entitles staff of the matching branch to a flat full-day payment,
// independent of whether they worked that day.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	BranchID  string // concrete branch id or BranchAll
	CreatedAt time.Time
}

// AppliesTo reports whether the holiday covers the given branch.
func (h Holiday) AppliesTo(branchID string) bool {
	return h.BranchID == BranchAll || h.BranchID == branchID
}
