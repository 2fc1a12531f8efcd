package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ReportingRepository serves the read-only balance projections.
type ReportingRepository interface {
	// AccountBalances returns one row per account, zero balances included.
	AccountBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// MonthlySpending totals EXPENSE lines by entry month and category.
	MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error)

	// CategoryBalances totals EXPENSE lines by category.
	CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error)
}
