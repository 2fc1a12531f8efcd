package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxImportRepository struct {
	BaseRepository
}

func newPgxImportRepository(q querier) *PgxImportRepository {
	return &PgxImportRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PgxImportRepository implements portsrepo.ImportRepositoryFacade
var _ portsrepo.ImportRepositoryFacade = (*PgxImportRepository)(nil)

func (r *PgxImportRepository) SaveBatch(ctx context.Context, batch domain.ImportBatch) (int64, error) {
	return r.insertReturningID(ctx, "failed to save import batch", `
		INSERT INTO import_batches (filename, bank_config, account_id, row_count, imported_count, duplicate_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		batch.Filename, batch.BankConfig, batch.AccountID, batch.RowCount, batch.ImportedCount, batch.DuplicateCount)
}

func (r *PgxImportRepository) UpdateBatchCounts(ctx context.Context, batchID int64, imported, duplicates int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE import_batches SET imported_count = $1, duplicate_count = $2 WHERE id = $3;`,
		imported, duplicates, batchID)
	if err != nil {
		return translateError(fmt.Sprintf("failed to update import batch %d", batchID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: import batch %d", apperrors.ErrNotFound, batchID)
	}
	return nil
}

const batchColumns = `id, filename, bank_config, account_id, row_count, imported_count, duplicate_count, imported_at`

func scanBatch(row pgx.CollectableRow) (domain.ImportBatch, error) {
	var b domain.ImportBatch
	err := row.Scan(&b.ID, &b.Filename, &b.BankConfig, &b.AccountID, &b.RowCount,
		&b.ImportedCount, &b.DuplicateCount, &b.ImportedAt)
	return b, err
}

func (r *PgxImportRepository) FindBatchByID(ctx context.Context, batchID int64) (*domain.ImportBatch, error) {
	op := fmt.Sprintf("failed to find import batch %d", batchID)
	rows, err := r.q.Query(ctx, `SELECT `+batchColumns+` FROM import_batches WHERE id = $1;`, batchID)
	if err != nil {
		return nil, translateError(op, err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBatch)
	if err != nil {
		return nil, translateError(op, err)
	}
	return &b, nil
}

func (r *PgxImportRepository) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	rows, err := r.q.Query(ctx, `SELECT `+batchColumns+` FROM import_batches ORDER BY imported_at DESC, id DESC;`)
	if err != nil {
		return nil, translateError("failed to list import batches", err)
	}
	batches, err := pgx.CollectRows(rows, scanBatch)
	if err != nil {
		return nil, translateError("failed to read import batches", err)
	}
	return batches, nil
}

func (r *PgxImportRepository) FingerprintExists(ctx context.Context, fingerprint string, accountID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transaction_fingerprints WHERE fingerprint = $1 AND account_id = $2
		);`, fingerprint, accountID).Scan(&exists)
	if err != nil {
		return false, translateError("failed to look up fingerprint", err)
	}
	return exists, nil
}

// SaveFingerprint fails with apperrors.ErrDuplicate when the fingerprint is
// already recorded for the account.
func (r *PgxImportRepository) SaveFingerprint(ctx context.Context, fp domain.TransactionFingerprint) (int64, error) {
	return r.insertReturningID(ctx, "failed to save fingerprint", `
		INSERT INTO transaction_fingerprints (fingerprint, account_id, journal_entry_id)
		VALUES ($1, $2, $3)
		RETURNING id;`,
		fp.Fingerprint, fp.AccountID, fp.JournalEntryID)
}
