package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entries and book entries.
type JournalReader interface {
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.BookEntry, error)

	// ListEntries returns entries newest first (date, then id) with a
	// denormalized summary of their lines.
	ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error)

	// SearchEntries matches descriptions containing query. A non-positive limit
	// returns every match.
	SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error)

	// SumAccountBalance is the sum of every book entry against the account.
	SumAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveEntry stores a header and all of its lines and returns the new entry id.
	SaveEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error)

	UpdateEntryCategory(ctx context.Context, entryID int64, categoryID *int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
