package domain

import (
	"github.com/shopspring/decimal"
)

// BookEntry is one signed amount against one account inside a journal entry.
// Positive amounts are debits and negative amounts are credits.
type BookEntry struct {
	ID             int64           `json:"id"`
	JournalEntryID int64           `json:"journalEntryID"`
	AccountID      int64           `json:"accountID"`
	AccountName    string          `json:"accountName,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
}

// Line is shorthand for a BookEntry that has not been stored yet.
func Line(accountID int64, amount decimal.Decimal) BookEntry {
	return BookEntry{AccountID: accountID, Amount: amount}
}

// SumAmounts totals the amounts of entries.
func SumAmounts(entries []BookEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
