package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/payroll"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// branchSalesRepository reads the POS subsystem's sales ledger for manager
// commission. This service only ever aggregates it, never writes.
type branchSalesRepository struct {
	db *database.DB
}

func NewBranchSalesRepository(db *database.DB) payroll.BranchSalesRepository {
	return &branchSalesRepository{db: db}
}

// TotalForMonth implements payroll.BranchSalesRepository.
func (r *branchSalesRepository) TotalForMonth(ctx context.Context, branchID string, year int, month time.Month) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM sales
		WHERE branch_id = $1
		  AND sold_at >= $2 AND sold_at < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, branchID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total branch sales: %w", err)
	}

	return total, nil
}
