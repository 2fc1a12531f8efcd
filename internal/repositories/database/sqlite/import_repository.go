package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

type ImportRepository struct {
	BaseRepository
}

func newImportRepository(q querier) *ImportRepository {
	return &ImportRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure ImportRepository implements portsrepo.ImportRepositoryFacade
var _ portsrepo.ImportRepositoryFacade = (*ImportRepository)(nil)

func (r *ImportRepository) SaveBatch(ctx context.Context, batch domain.ImportBatch) (int64, error) {
	return r.insert(ctx, "failed to save import batch", `
		INSERT INTO import_batches (filename, bank_config, account_id, row_count, imported_count, duplicate_count)
		VALUES (?, ?, ?, ?, ?, ?);`,
		batch.Filename, batch.BankConfig, batch.AccountID, batch.RowCount, batch.ImportedCount, batch.DuplicateCount)
}

func (r *ImportRepository) UpdateBatchCounts(ctx context.Context, batchID int64, imported, duplicates int) error {
	n, err := r.exec(ctx, fmt.Sprintf("failed to update import batch %d", batchID),
		`UPDATE import_batches SET imported_count = ?, duplicate_count = ? WHERE id = ?;`,
		imported, duplicates, batchID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: import batch %d", apperrors.ErrNotFound, batchID)
	}
	return nil
}

const batchColumns = `id, filename, bank_config, account_id, row_count, imported_count, duplicate_count, imported_at`

func scanBatch(row rowScanner) (domain.ImportBatch, error) {
	var (
		b          domain.ImportBatch
		importedAt string
	)
	if err := row.Scan(&b.ID, &b.Filename, &b.BankConfig, &b.AccountID, &b.RowCount,
		&b.ImportedCount, &b.DuplicateCount, &importedAt); err != nil {
		return domain.ImportBatch{}, err
	}
	b.ImportedAt = mapping.FromTimestampString(importedAt)
	return b, nil
}

func (r *ImportRepository) FindBatchByID(ctx context.Context, batchID int64) (*domain.ImportBatch, error) {
	b, err := scanBatch(r.q.QueryRowContext(ctx, `SELECT `+batchColumns+` FROM import_batches WHERE id = ?;`, batchID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find import batch %d", batchID), err)
	}
	return &b, nil
}

func (r *ImportRepository) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+batchColumns+` FROM import_batches ORDER BY imported_at DESC, id DESC;`)
	if err != nil {
		return nil, translateError("failed to list import batches", err)
	}
	defer rows.Close()

	batches := []domain.ImportBatch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, wrapScan("list import batches", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate import batches", err)
	}
	return batches, nil
}

func (r *ImportRepository) FingerprintExists(ctx context.Context, fingerprint string, accountID int64) (bool, error) {
	var exists int
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transaction_fingerprints WHERE fingerprint = ? AND account_id = ?
		);`, fingerprint, accountID).Scan(&exists)
	if err != nil {
		return false, translateError("failed to look up fingerprint", err)
	}
	return exists != 0, nil
}

// SaveFingerprint fails with apperrors.ErrDuplicate when the fingerprint is
// already recorded for the account.
func (r *ImportRepository) SaveFingerprint(ctx context.Context, fp domain.TransactionFingerprint) (int64, error) {
	return r.insert(ctx, "failed to save fingerprint", `
		INSERT INTO transaction_fingerprints (fingerprint, account_id, journal_entry_id)
		VALUES (?, ?, ?);`,
		fp.Fingerprint, fp.AccountID, fp.JournalEntryID)
}
