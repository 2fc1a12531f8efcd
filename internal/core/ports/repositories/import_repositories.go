package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ImportBatchRepository stores import audit records.
type ImportBatchRepository interface {
	SaveBatch(ctx context.Context, batch domain.ImportBatch) (int64, error)
	UpdateBatchCounts(ctx context.Context, batchID int64, imported, duplicates int) error
	FindBatchByID(ctx context.Context, batchID int64) (*domain.ImportBatch, error)
	ListBatches(ctx context.Context) ([]domain.ImportBatch, error)
}

// FingerprintRepository is the persisted half of the duplicate index.
type FingerprintRepository interface {
	FingerprintExists(ctx context.Context, fingerprint string, accountID int64) (bool, error)
	SaveFingerprint(ctx context.Context, fp domain.TransactionFingerprint) (int64, error)
}

// ImportRepositoryFacade combines batch and fingerprint access.
type ImportRepositoryFacade interface {
	ImportBatchRepository
	FingerprintRepository
}
