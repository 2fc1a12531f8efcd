// Package sqlite is the embedded SQLite store. Amounts are kept as integer
// cents; dates as YYYY-MM-DD text.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
)

// querier is the part of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code runs inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	q querier
}

// insert runs an INSERT and returns the new row id.
func (r *BaseRepository) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, translateError(op, err)
	}
	return id, nil
}

// exec runs a statement and reports how many rows it touched.
func (r *BaseRepository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateError(op, err)
	}
	return n, nil
}

// Store is the SQLite implementation of portsrepo.Store.
type Store struct {
	db    *sql.DB
	repos portsrepo.RepositoryProvider
}

// NewStore wraps an open, migrated database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repos: newRepositories(db)}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

// WithinTx runs fn in one write transaction. The DSN asks for IMMEDIATE
// transactions, so the database lock is taken at BEGIN and a second writer
// waits out the busy timeout instead of failing halfway through.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return txError("failed to begin transaction", err)
	}
	// Returns sql.ErrTxDone after a successful commit.
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return txError("failed to commit transaction", err)
	}
	return nil
}

// Repositories returns repositories that run each statement on its own.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return s.repos
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the handle for health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}

func newRepositories(q querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newAccountRepository(q),
		CategoryRepo:  newCategoryRepository(q),
		JournalRepo:   newJournalRepository(q),
		ImportRepo:    newImportRepository(q),
		PropertyRepo:  newPropertyRepository(q),
		ReportingRepo: newReportingRepository(q),
	}
}

// txError keeps lock waits and constraint failures recognisable and reports
// anything else as an internal error.
func txError(message string, err error) error {
	translated := translateError(message, err)
	if errors.Is(translated, apperrors.ErrStoreBusy) || errors.Is(translated, apperrors.ErrIntegrityConflict) {
		return translated
	}
	return apperrors.NewAppError(500, message, err)
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, '?')
	}
	return string(b)
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func wrapScan(op string, err error) error {
	return fmt.Errorf("%s: failed to scan row: %w", op, err)
}
