package payroll

import "context"

// PayrollService derives monthly statements from attendance, bookings and the
// holiday calendar. Computation never errors on incomplete source data; absent
// records simply contribute zero to their terms.
type PayrollService interface {
	GenerateMonthlyStatement(ctx context.Context, req StatementRequest) (StatementResponse, error)
}
