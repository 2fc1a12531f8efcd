package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is implemented by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	q querier
}

// insertReturningID runs an INSERT ... RETURNING id.
func (r *BaseRepository) insertReturningID(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, translateError(op, err)
	}
	return id, nil
}

// Begin starts a new database transaction
func Begin(ctx context.Context, pool *pgxpool.Pool) (pgx.Tx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, txError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction. The deferred balance trigger runs here, so a
// constraint failure surfaces from Commit rather than from the insert.
func Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return txError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

func txError(message string, err error) error {
	translated := translateError(message, err)
	if errors.Is(translated, apperrors.ErrStoreBusy) || errors.Is(translated, apperrors.ErrIntegrityConflict) ||
		errors.Is(translated, apperrors.ErrDuplicate) {
		return translated
	}
	return apperrors.NewAppError(500, message, err)
}

// translateError maps pgx errors onto the apperrors sentinels.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch {
	case pgErr.Code == "23505": // unique_violation
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrDuplicate, pgErr.Message)
	case len(pgErr.Code) == 5 && pgErr.Code[:2] == "22": // data_exception class, e.g. numeric_value_out_of_range
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrValidation, pgErr.Message)
	case len(pgErr.Code) == 5 && pgErr.Code[:2] == "23": // integrity_constraint_violation class
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrIntegrityConflict, pgErr.Message)
	case pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "55P03": // serialization, deadlock, lock_not_available
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrStoreBusy, pgErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
