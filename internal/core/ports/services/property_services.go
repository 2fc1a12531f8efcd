package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// PropertySvcFacade manages properties, owners, ownership links and valuations.
type PropertySvcFacade interface {
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error)
	GetProperty(ctx context.Context, propertyID int64) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)

	// CreateOwner is idempotent by name.
	CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.Owner, error)
	ListOwners(ctx context.Context) ([]domain.Owner, error)

	// AddOwnership links an owner to a property and creates the owner's
	// capital account for that property.
	AddOwnership(ctx context.Context, propertyID int64, req dto.AddOwnershipRequest) (*domain.PropertyOwnership, error)
	ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error)

	AddValuation(ctx context.Context, propertyID int64, req dto.AddValuationRequest) (*domain.PropertyValuation, error)
	ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error)
}

// EquitySvc derives owner equity from capital balances, the latest valuation
// and outstanding mortgages.
type EquitySvc interface {
	Calculate(ctx context.Context, propertyID int64) ([]domain.OwnerEquity, error)
	CalculateAll(ctx context.Context) (map[int64][]domain.OwnerEquity, error)
	OwnerTotalEquity(ctx context.Context, ownerID int64) (decimal.Decimal, error)
	PropertySummary(ctx context.Context, propertyID int64) (*domain.PropertySummary, error)

	// SnapshotEquity writes the current figures to equity_snapshots. Calculate
	// never reads them back.
	SnapshotEquity(ctx context.Context, propertyID int64, date time.Time) ([]domain.EquitySnapshot, error)
}

// TransferSvc moves owner capital between properties.
type TransferSvc interface {
	TransferEquity(ctx context.Context, req dto.TransferEquityRequest) (*domain.PropertyTransfer, error)
	GetTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error)
}

// AllocationSvc splits shared property income and expenses across owners.
type AllocationSvc interface {
	RecordRentalIncome(ctx context.Context, propertyID int64, req dto.RentalIncomeRequest) (*domain.AllocationResult, error)
	RecordPropertyExpense(ctx context.Context, propertyID int64, req dto.PropertyExpenseRequest) (*domain.AllocationResult, error)

	SetAllocationRule(ctx context.Context, propertyID int64, req dto.AllocationRuleRequest) (*domain.ExpenseAllocationRule, error)
	SetAllocationRules(ctx context.Context, propertyID int64, req dto.AllocationSplitRequest) ([]domain.ExpenseAllocationRule, error)
	GetAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error)
}

// MortgageSvc manages mortgages and posts split mortgage payments.
type MortgageSvc interface {
	AddMortgage(ctx context.Context, propertyID int64, req dto.AddMortgageRequest) (*domain.Mortgage, error)
	ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error)

	RecordPayment(ctx context.Context, mortgageID int64, req dto.MortgagePaymentRequest) (*domain.MortgagePayment, error)
	GetPaymentHistory(ctx context.Context, mortgageID int64) ([]domain.EntryListItem, error)

	AddRate(ctx context.Context, mortgageID int64, req dto.AddMortgageRateRequest) (*domain.MortgageRate, error)
	RateHistory(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error)
}
