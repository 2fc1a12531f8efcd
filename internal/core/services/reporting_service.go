package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
)

// reportingService implements the BalanceSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the balance projection service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.BalanceSvc {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the BalanceSvc interface
var _ portssvc.BalanceSvc = (*reportingService)(nil)

// AccountBalances lists every account with its derived balance.
func (s *reportingService) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	rows, err := s.reportingRepo.AccountBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account balances")
		return nil, fmt.Errorf("failed to retrieve account balances: %w", err)
	}
	s.LogDebug(ctx, "Account balances generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// MonthlySpending totals expenses by month and category within filter.
func (s *reportingService) MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
	}
	rows, err := s.reportingRepo.MonthlySpending(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly spending")
		return nil, fmt.Errorf("failed to retrieve monthly spending: %w", err)
	}
	s.LogDebug(ctx, "Monthly spending generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

func (s *reportingService) CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error) {
	rows, err := s.reportingRepo.CategoryBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category balances")
		return nil, fmt.Errorf("failed to retrieve category balances: %w", err)
	}
	return rows, nil
}
