package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is one row of the account balance projection.
type AccountBalance struct {
	AccountID int64           `json:"accountID"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
}

// MonthlySpending is the EXPENSE total for one month and category.
type MonthlySpending struct {
	Month        string          `json:"month"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// CategoryBalance is the all-time EXPENSE total for one category.
type CategoryBalance struct {
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// OwnerEquity is one owner's share of a property.
type OwnerEquity struct {
	PropertyID       int64           `json:"propertyID"`
	OwnerID          int64           `json:"ownerID"`
	OwnerName        string          `json:"ownerName"`
	CapitalAccountID int64           `json:"capitalAccountID"`
	CapitalBalance   decimal.Decimal `json:"capitalBalance"`
	OwnershipPct     decimal.Decimal `json:"ownershipPct"`
	EquityAmount     decimal.Decimal `json:"equityAmount"`
}

// PropertySummary is the headline equity picture of one property.
type PropertySummary struct {
	Property        Property        `json:"property"`
	MarketValue     decimal.Decimal `json:"marketValue"`
	ValuationDate   *time.Time      `json:"valuationDate,omitempty"`
	MortgageBalance decimal.Decimal `json:"mortgageBalance"`
	NetEquity       decimal.Decimal `json:"netEquity"`
	Owners          []OwnerEquity   `json:"owners"`
}

// MortgagePayment identifies the two entries a mortgage payment posts.
type MortgagePayment struct {
	PaymentEntryID int64 `json:"paymentEntryID"`
	CapitalEntryID int64 `json:"capitalEntryID"`
}

// AllocationResult identifies the entries posted by a rental income or
// property expense allocation.
type AllocationResult struct {
	PrimaryEntryID     int64   `json:"primaryEntryID"`
	AllocationEntryIDs []int64 `json:"allocationEntryIDs"`
}
