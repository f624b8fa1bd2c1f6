package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BranchSalesRepository exposes the POS subsystem's monthly sales totals,
// consumed for manager commission. The POS itself is outside this service.
type BranchSalesRepository interface {
	TotalForMonth(ctx context.Context, branchID string, year int, month time.Month) (decimal.Decimal, error)
}
