package domain

import (
	"time"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Names of accounts the ledger creates or looks up by name.
const (
	BankAccountName                  = "Bank"
	CashAccountName                  = "Cash"
	UncategorizedIncomeAccountName   = "Uncategorized Income"
	UncategorizedExpenseAccountName  = "Uncategorized Expense"
	RentalIncomeAccountName          = "Rental Income"
	RentalIncomeEquityAccountName    = "Rental Income Equity"
	PropertyExpensesAccountName      = "Property Expenses"
	PropertyExpenseEquityAccountName = "Property Expense Equity"
	MortgageInterestAccountName      = "Mortgage Interest"
)

// Account is a ledger account. Accounts are only ever created; the balance
// is derived from book entries and never stored here.
type Account struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	ParentID    *int64      `json:"parentID,omitempty"`
	IsSystem    bool        `json:"isSystem"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
