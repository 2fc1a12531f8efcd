package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// PropertyReader defines read operations for properties and everything hanging off them.
type PropertyReader interface {
	FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)

	FindOwnerByID(ctx context.Context, ownerID int64) (*domain.Owner, error)
	ListOwners(ctx context.Context) ([]domain.Owner, error)

	// ListOwnership returns the ownership links of a property with owner names.
	ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error)
	// ListOwnershipByOwner returns every ownership link of one owner.
	ListOwnershipByOwner(ctx context.Context, ownerID int64) ([]domain.PropertyOwnership, error)

	FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error)
	// ListMortgages returns a property's mortgages ordered by start date.
	ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error)
	ListMortgageRates(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error)

	// LatestValuation returns apperrors.ErrNotFound when nothing has been recorded.
	LatestValuation(ctx context.Context, propertyID int64) (*domain.PropertyValuation, error)
	ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error)

	// ListTransfers returns transfers newest first, with property and owner names.
	ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error)

	ListAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error)
}

// PropertyWriter defines write operations for properties and everything hanging off them.
type PropertyWriter interface {
	SaveProperty(ctx context.Context, property domain.Property) (int64, error)

	// SaveOwner is idempotent by name and returns the id of the existing owner
	// when the name is already taken.
	SaveOwner(ctx context.Context, owner domain.Owner) (int64, error)

	SaveOwnership(ctx context.Context, ownership domain.PropertyOwnership) (int64, error)
	SaveMortgage(ctx context.Context, mortgage domain.Mortgage) (int64, error)
	SaveMortgageRate(ctx context.Context, rate domain.MortgageRate) (int64, error)
	SaveValuation(ctx context.Context, valuation domain.PropertyValuation) (int64, error)
	SaveTransfer(ctx context.Context, transfer domain.PropertyTransfer) (int64, error)
	SaveEquitySnapshot(ctx context.Context, snapshot domain.EquitySnapshot) (int64, error)

	// UpsertAllocationRule inserts or replaces the rule for (property, owner, expense type).
	UpsertAllocationRule(ctx context.Context, rule domain.ExpenseAllocationRule) error
	DeleteAllocationRules(ctx context.Context, propertyID int64, expenseType string) error
}

// PropertyRepositoryFacade combines all property-related repository interfaces
type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}
