package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultSearchLimit caps SearchEntries when the caller does not.
const DefaultSearchLimit = 50

// journalService provides the core double-entry operations.
type journalService struct {
	BaseService
	store portsrepo.Store
}

// NewJournalService creates a new ledger service backed by store.
func NewJournalService(store portsrepo.Store) portssvc.LedgerSvcFacade {
	return &journalService{store: store}
}

var _ portssvc.LedgerSvcFacade = (*journalService)(nil)

func (s *journalService) PostEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error) {
	entry := domain.NewProposedEntry(header.Date, header.Description, lines...)
	entry.Header.Reference = header.Reference
	entry.Header.CategoryID = header.CategoryID
	entry.Header.ImportBatchID = header.ImportBatchID

	if err := entry.Validate(); err != nil {
		s.LogWarn(ctx, err, "Rejected unbalanced journal entry", slog.String("description", header.Description))
		return 0, err
	}

	var entryID int64
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if header.CategoryID != nil {
			if _, err := repos.CategoryRepo.FindCategoryByID(ctx, *header.CategoryID); err != nil {
				return fmt.Errorf("category: %w", err)
			}
		}
		ids, err := postEntries(ctx, repos, entry)
		if err != nil {
			return err
		}
		entryID = ids[0]
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("description", header.Description))
		return 0, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.Int64("journal_entry_id", entryID),
		slog.Int("lines", len(lines)))
	return entryID, nil
}

func (s *journalService) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	repos := s.store.Repositories()
	if _, err := repos.AccountRepo.FindAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	return repos.JournalRepo.SumAccountBalance(ctx, accountID)
}

func (s *journalService) GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error) {
	repos := s.store.Repositories()
	entry, err := repos.JournalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := repos.JournalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load book entries", slog.Int64("journal_entry_id", entryID))
		return nil, err
	}
	return &domain.EntryDetail{JournalEntry: *entry, Lines: lines}, nil
}

func (s *journalService) ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", apperrors.ErrValidation)
	}
	return s.store.Repositories().JournalRepo.ListEntries(ctx, filter, page.Normalize())
}

func (s *journalService) SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return s.store.Repositories().JournalRepo.SearchEntries(ctx, query, limit)
}

func (s *journalService) UpdateCategory(ctx context.Context, entryID int64, categoryID *int64) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.JournalRepo.FindEntryByID(ctx, entryID); err != nil {
			return err
		}
		if categoryID != nil {
			if _, err := repos.CategoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
				return fmt.Errorf("category: %w", err)
			}
		}
		return repos.JournalRepo.UpdateEntryCategory(ctx, entryID, categoryID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update entry category", slog.Int64("journal_entry_id", entryID))
		return err
	}
	return nil
}
