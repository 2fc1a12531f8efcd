package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportBatch is the audit record of one import run.
type ImportBatch struct {
	ID             int64     `json:"id"`
	Filename       string    `json:"filename"`
	BankConfig     string    `json:"bankConfig"`
	AccountID      int64     `json:"accountID"`
	RowCount       int       `json:"rowCount"`
	ImportedCount  int       `json:"importedCount"`
	DuplicateCount int       `json:"duplicateCount"`
	ImportedAt     time.Time `json:"importedAt"`
}

// TransactionFingerprint ties a fingerprint, scoped to one account, to the
// journal entry it produced.
type TransactionFingerprint struct {
	ID             int64  `json:"id"`
	Fingerprint    string `json:"fingerprint"`
	AccountID      int64  `json:"accountID"`
	JournalEntryID int64  `json:"journalEntryID"`
}

// RawTransaction is one parsed row from a bank statement.
type RawTransaction struct {
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	Amount              decimal.Decimal `json:"amount"`
	Reference           *string         `json:"reference,omitempty"`
	Fingerprint         string          `json:"fingerprint"`
	IsDuplicate         bool            `json:"isDuplicate"`
	SuggestedCategoryID *int64          `json:"suggestedCategoryID,omitempty"`
}

// ImportResult summarises a completed import.
type ImportResult struct {
	BatchID        int64 `json:"batchID"`
	ImportedCount  int   `json:"importedCount"`
	DuplicateCount int   `json:"duplicateCount"`
	TotalCount     int   `json:"totalCount"`
}
