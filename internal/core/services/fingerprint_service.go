package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/utils/hashing"
)

type fingerprintService struct {
	BaseService
	store portsrepo.Store
}

// NewFingerprintService creates the duplicate index service.
func NewFingerprintService(store portsrepo.Store) portssvc.FingerprintSvc {
	return &fingerprintService{store: store}
}

var _ portssvc.FingerprintSvc = (*fingerprintService)(nil)

func (s *fingerprintService) Exists(ctx context.Context, fingerprint string, accountID int64) (bool, error) {
	return s.store.Repositories().ImportRepo.FingerprintExists(ctx, fingerprint, accountID)
}

func (s *fingerprintService) Record(ctx context.Context, fingerprint string, accountID int64, journalEntryID int64) error {
	_, err := s.store.Repositories().ImportRepo.SaveFingerprint(ctx, domain.TransactionFingerprint{
		Fingerprint:    fingerprint,
		AccountID:      accountID,
		JournalEntryID: journalEntryID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record fingerprint")
	}
	return err
}

func (s *fingerprintService) MarkDuplicates(ctx context.Context, txns []domain.RawTransaction, accountID int64) ([]domain.RawTransaction, error) {
	return markDuplicates(ctx, s.store.Repositories().ImportRepo, txns, accountID)
}

// markDuplicates fills in missing fingerprints and flags rows that were
// imported into accountID before or that repeat an earlier row of txns.
func markDuplicates(ctx context.Context, repo portsrepo.FingerprintRepository, txns []domain.RawTransaction, accountID int64) ([]domain.RawTransaction, error) {
	seen := make(map[string]struct{}, len(txns))
	out := make([]domain.RawTransaction, len(txns))
	for i, txn := range txns {
		if txn.Fingerprint == "" {
			txn.Fingerprint = hashing.Fingerprint(txn.Date, txn.Amount, txn.Description)
		}
		if _, dup := seen[txn.Fingerprint]; dup {
			txn.IsDuplicate = true
		} else {
			exists, err := repo.FingerprintExists(ctx, txn.Fingerprint, accountID)
			if err != nil {
				return nil, err
			}
			txn.IsDuplicate = exists
		}
		seen[txn.Fingerprint] = struct{}{}
		out[i] = txn
	}
	return out, nil
}
