package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// BalanceSvc serves read-only balance projections. Nothing is cached.
type BalanceSvc interface {
	AccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
	MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error)
	CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error)
}
