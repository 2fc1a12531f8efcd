package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest defines the data needed to create a property.
type CreatePropertyRequest struct {
	Name          string           `json:"name" binding:"required"`
	Address       *string          `json:"address"`
	PropertyType  string           `json:"propertyType"`
	PurchaseDate  *string          `json:"purchaseDate" binding:"omitempty,isodate"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"omitempty,amount2dp"`
	Notes         *string          `json:"notes"`
}

// CreateOwnerRequest defines the data needed to create an owner.
type CreateOwnerRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddOwnershipRequest links an owner to a property.
type AddOwnershipRequest struct {
	OwnerID int64 `json:"ownerID" binding:"required,gt=0"`
}

// AddMortgageRequest defines a mortgage or loan part. When LiabilityAccountID
// is set the part shares that liability account.
type AddMortgageRequest struct {
	Lender             string          `json:"lender" binding:"required"`
	OriginalAmount     decimal.Decimal `json:"originalAmount" binding:"amount2dp"`
	StartDate          string          `json:"startDate" binding:"required,isodate"`
	TermMonths         *int            `json:"termMonths" binding:"omitempty,gt=0"`
	LiabilityAccountID *int64          `json:"liabilityAccountID" binding:"omitempty,gt=0"`
}

// AddMortgageRateRequest appends to a mortgage's rate history.
type AddMortgageRateRequest struct {
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effectiveDate" binding:"required,isodate"`
	Notes         *string         `json:"notes"`
}

// AddValuationRequest appends to a property's valuation history.
type AddValuationRequest struct {
	ValuationDate string          `json:"valuationDate" binding:"required,isodate"`
	Amount        decimal.Decimal `json:"amount" binding:"amount2dp"`
	Source        string          `json:"source"`
	Notes         *string         `json:"notes"`
}

// MortgagePaymentRequest splits a payment into principal and interest.
// FromAccountID defaults to the Bank account.
type MortgagePaymentRequest struct {
	Date          string          `json:"date" binding:"required,isodate"`
	Total         decimal.Decimal `json:"total" binding:"amount2dp"`
	Principal     decimal.Decimal `json:"principal" binding:"amount2dp"`
	Interest      decimal.Decimal `json:"interest" binding:"amount2dp"`
	PayerOwnerID  int64           `json:"payerOwnerID" binding:"required,gt=0"`
	FromAccountID *int64          `json:"fromAccountID" binding:"omitempty,gt=0"`
}

// RentalIncomeRequest records rent received. ToAccountID defaults to Bank.
type RentalIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"amount2dp"`
	Date        string          `json:"date" binding:"required,isodate"`
	Description string          `json:"description"`
	ToAccountID *int64          `json:"toAccountID" binding:"omitempty,gt=0"`
}

// PropertyExpenseRequest records a shared property expense. FromAccountID
// defaults to Bank and ExpenseType to "all".
type PropertyExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"amount2dp"`
	Date          string          `json:"date" binding:"required,isodate"`
	Description   string          `json:"description"`
	FromAccountID *int64          `json:"fromAccountID" binding:"omitempty,gt=0"`
	ExpenseType   string          `json:"expenseType" binding:"omitempty,expensetype"`
}

// AllocationRuleRequest sets one owner's share for an expense type.
type AllocationRuleRequest struct {
	OwnerID       int64           `json:"ownerID" binding:"required,gt=0"`
	ExpenseType   string          `json:"expenseType" binding:"omitempty,expensetype"`
	AllocationPct decimal.Decimal `json:"allocationPct"`
}

// OwnerAllocation is one owner's share inside an AllocationSplitRequest.
type OwnerAllocation struct {
	OwnerID       int64           `json:"ownerID" binding:"required,gt=0"`
	AllocationPct decimal.Decimal `json:"allocationPct"`
}

// AllocationSplitRequest replaces the whole split for an expense type. The
// percentages must add up to 100.
type AllocationSplitRequest struct {
	ExpenseType string            `json:"expenseType" binding:"omitempty,expensetype"`
	Allocations []OwnerAllocation `json:"allocations" binding:"required,min=1,dive"`
}

// TransferEquityRequest moves an owner's capital between two properties.
type TransferEquityRequest struct {
	FromPropertyID int64           `json:"fromPropertyID" binding:"required,gt=0"`
	ToPropertyID   int64           `json:"toPropertyID" binding:"required,gt=0"`
	OwnerID        int64           `json:"ownerID" binding:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount" binding:"amount2dp"`
	Date           string          `json:"date" binding:"required,isodate"`
	Description    *string         `json:"description"`
}

// SnapshotEquityRequest writes equity snapshots for a date (today if empty).
type SnapshotEquityRequest struct {
	Date string `json:"date" binding:"omitempty,isodate"`
}
