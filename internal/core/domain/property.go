package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllExpenseTypes is the expense type an allocation rule uses to apply to
// everything without a more specific rule.
const AllExpenseTypes = "all"

// DefaultPropertyType is used when a property is created without a type.
const DefaultPropertyType = "residential"

// DefaultValuationSource is used when a valuation is recorded without a source.
const DefaultValuationSource = "manual"

type Property struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Address       *string          `json:"address,omitempty"`
	PropertyType  string           `json:"propertyType"`
	PurchaseDate  *time.Time       `json:"purchaseDate,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type Owner struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// PropertyOwnership binds an owner to a property through a dedicated EQUITY
// capital account.
type PropertyOwnership struct {
	ID               int64  `json:"id"`
	PropertyID       int64  `json:"propertyID"`
	OwnerID          int64  `json:"ownerID"`
	OwnerName        string `json:"ownerName,omitempty"`
	CapitalAccountID int64  `json:"capitalAccountID"`
}

// Mortgage points at the LIABILITY account holding its outstanding principal.
// Several mortgages (loan parts) may share one liability account.
type Mortgage struct {
	ID                 int64           `json:"id"`
	PropertyID         int64           `json:"propertyID"`
	Lender             string          `json:"lender"`
	OriginalAmount     decimal.Decimal `json:"originalAmount"`
	StartDate          time.Time       `json:"startDate"`
	TermMonths         *int            `json:"termMonths,omitempty"`
	LiabilityAccountID int64           `json:"liabilityAccountID"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// MortgageRate is one point in a mortgage's interest rate history.
type MortgageRate struct {
	ID            int64           `json:"id"`
	MortgageID    int64           `json:"mortgageID"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	Notes         *string         `json:"notes,omitempty"`
}

type PropertyValuation struct {
	ID            int64           `json:"id"`
	PropertyID    int64           `json:"propertyID"`
	ValuationDate time.Time       `json:"valuationDate"`
	Amount        decimal.Decimal `json:"amount"`
	Source        string          `json:"source"`
	Notes         *string         `json:"notes,omitempty"`
}

// EquitySnapshot is an optional point-in-time copy of an owner's equity.
// Equity is always recomputed live; snapshots are only written.
type EquitySnapshot struct {
	ID              int64           `json:"id"`
	PropertyID      int64           `json:"propertyID"`
	OwnerID         int64           `json:"ownerID"`
	SnapshotDate    time.Time       `json:"snapshotDate"`
	MarketValue     decimal.Decimal `json:"marketValue"`
	MortgageBalance decimal.Decimal `json:"mortgageBalance"`
	CapitalBalance  decimal.Decimal `json:"capitalBalance"`
	OwnershipPct    decimal.Decimal `json:"ownershipPct"`
	EquityAmount    decimal.Decimal `json:"equityAmount"`
}

// PropertyTransfer is the audit row of a cross-property capital movement.
// The referenced journal entry is the actual ledger mutation.
type PropertyTransfer struct {
	ID               int64           `json:"id"`
	FromPropertyID   int64           `json:"fromPropertyID"`
	ToPropertyID     int64           `json:"toPropertyID"`
	OwnerID          int64           `json:"ownerID"`
	Amount           decimal.Decimal `json:"amount"`
	JournalEntryID   int64           `json:"journalEntryID"`
	TransferDate     time.Time       `json:"transferDate"`
	Description      string          `json:"description"`
	FromPropertyName string          `json:"fromPropertyName,omitempty"`
	ToPropertyName   string          `json:"toPropertyName,omitempty"`
	OwnerName        string          `json:"ownerName,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// TransferFilter narrows GetTransfers. PropertyID matches either side.
type TransferFilter struct {
	PropertyID *int64
	OwnerID    *int64
}

// ExpenseAllocationRule gives one owner's percentage of a property's shared
// income or expense of a given type.
type ExpenseAllocationRule struct {
	ID            int64           `json:"id"`
	PropertyID    int64           `json:"propertyID"`
	OwnerID       int64           `json:"ownerID"`
	ExpenseType   string          `json:"expenseType"`
	AllocationPct decimal.Decimal `json:"allocationPct"`
}
