package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// DefaultBankConfig labels imports that did not come from a bank profile.
const DefaultBankConfig = "manual"

// importService posts parsed statement rows, skipping duplicates.
type importService struct {
	BaseService
	store portsrepo.Store
}

// NewImportService creates a new import service backed by store.
func NewImportService(store portsrepo.Store) portssvc.ImportSvc {
	return &importService{store: store}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// Run imports txns into the account named by meta. The batch record, every
// entry and every fingerprint commit in one transaction.
func (s *importService) Run(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) (*domain.ImportResult, error) {
	accountName, err := requireName("account name", meta.AccountName)
	if err != nil {
		return nil, err
	}
	bankConfig := strings.TrimSpace(meta.BankConfig)
	if bankConfig == "" {
		bankConfig = DefaultBankConfig
	}

	result := domain.ImportResult{TotalCount: len(txns)}
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := getOrCreateAccount(ctx, repos.AccountRepo, accountName, domain.Asset)
		if err != nil {
			return err
		}
		marked, err := markDuplicates(ctx, repos.ImportRepo, txns, account.ID)
		if err != nil {
			return err
		}
		marked, err = categorize(ctx, repos.CategoryRepo, marked)
		if err != nil {
			return err
		}

		batchID, err := repos.ImportRepo.SaveBatch(ctx, domain.ImportBatch{
			Filename:   meta.Filename,
			BankConfig: bankConfig,
			AccountID:  account.ID,
			RowCount:   len(txns),
		})
		if err != nil {
			return err
		}
		result.BatchID = batchID

		var income, expense *domain.Account
		for _, txn := range marked {
			if txn.IsDuplicate {
				result.DuplicateCount++
				continue
			}

			var entry domain.ProposedEntry
			if txn.Amount.IsNegative() {
				if expense == nil {
					if expense, err = getOrCreateAccount(ctx, repos.AccountRepo, domain.UncategorizedExpenseAccountName, domain.Expense); err != nil {
						return err
					}
				}
				entry = domain.NewProposedEntry(txn.Date, txn.Description,
					domain.Line(account.ID, txn.Amount),
					domain.Line(expense.ID, txn.Amount.Neg()),
				)
			} else {
				if income == nil {
					if income, err = getOrCreateAccount(ctx, repos.AccountRepo, domain.UncategorizedIncomeAccountName, domain.Income); err != nil {
						return err
					}
				}
				entry = domain.NewProposedEntry(txn.Date, txn.Description,
					domain.Line(account.ID, txn.Amount),
					domain.Line(income.ID, txn.Amount.Neg()),
				)
			}
			entry.Header.Reference = txn.Reference
			entry.Header.CategoryID = txn.SuggestedCategoryID
			entry.Header.ImportBatchID = &batchID

			ids, err := postEntries(ctx, repos, entry)
			if err != nil {
				return err
			}
			_, err = repos.ImportRepo.SaveFingerprint(ctx, domain.TransactionFingerprint{
				Fingerprint:    txn.Fingerprint,
				AccountID:      account.ID,
				JournalEntryID: ids[0],
			})
			if err != nil {
				return err
			}
			result.ImportedCount++
		}

		return repos.ImportRepo.UpdateBatchCounts(ctx, batchID, result.ImportedCount, result.DuplicateCount)
	})
	if err != nil {
		s.LogError(ctx, err, "Import failed",
			slog.String("account", accountName),
			slog.String("filename", meta.Filename),
			slog.Int("rows", len(txns)))
		return nil, err
	}

	s.LogInfo(ctx, "Import completed",
		slog.Int64("batch_id", result.BatchID),
		slog.Int("imported", result.ImportedCount),
		slog.Int("duplicates", result.DuplicateCount),
		slog.Int("total", result.TotalCount))
	return &result, nil
}

// Preview marks duplicates and suggests categories without writing anything.
// An account that does not exist yet has no duplicates.
func (s *importService) Preview(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) ([]domain.RawTransaction, error) {
	accountName, err := requireName("account name", meta.AccountName)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()

	marked := txns
	account, err := repos.AccountRepo.FindAccountByName(ctx, accountName)
	switch {
	case err == nil:
		marked, err = markDuplicates(ctx, repos.ImportRepo, txns, account.ID)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
		marked, err = markDuplicates(ctx, noFingerprints{}, txns, 0)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return categorize(ctx, repos.CategoryRepo, marked)
}

func (s *importService) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	return s.store.Repositories().ImportRepo.ListBatches(ctx)
}

// noFingerprints is the index of an account that has never been imported into.
type noFingerprints struct{}

func (noFingerprints) FingerprintExists(context.Context, string, int64) (bool, error) {
	return false, nil
}

func (noFingerprints) SaveFingerprint(context.Context, domain.TransactionFingerprint) (int64, error) {
	return 0, errors.New("fingerprint index is read-only")
}
