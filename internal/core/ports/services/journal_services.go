package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on the ledger.
type LedgerReaderSvc interface {
	// GetBalance is the sum of every book entry against the account.
	GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)

	GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error)

	// ListEntries returns entries newest first with a summary of their lines.
	ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error)

	SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error)
}

// LedgerWriterSvc defines write operations on the ledger.
type LedgerWriterSvc interface {
	// PostEntry validates and stores a balanced journal entry atomically.
	PostEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error)

	UpdateCategory(ctx context.Context, entryID int64, categoryID *int64) error
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
