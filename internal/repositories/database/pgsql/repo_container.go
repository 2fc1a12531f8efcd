package pgsql

import (
	"context"
	"strconv"
	"time"

	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the PostgreSQL implementation of portsrepo.Store.
type Store struct {
	pool        *pgxpool.Pool
	repos       portsrepo.RepositoryProvider
	lockTimeout time.Duration
}

// NewStore wraps a connected pool. lockTimeout bounds how long a write
// transaction waits for row locks; zero leaves the server default.
func NewStore(pool *pgxpool.Pool, lockTimeout time.Duration) *Store {
	return &Store{pool: pool, repos: NewRepositoryProvider(pool), lockTimeout: lockTimeout}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

func NewRepositoryProvider(q querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(q),
		CategoryRepo:  newPgxCategoryRepository(q),
		JournalRepo:   newPgxJournalRepository(q),
		ImportRepo:    newPgxImportRepository(q),
		PropertyRepo:  newPgxPropertyRepository(q),
		ReportingRepo: newReportingRepository(q),
	}
}

// WithinTx runs fn in one transaction bound to every repository it receives.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	tx, err := Begin(ctx, s.pool)
	if err != nil {
		return err
	}
	defer Rollback(ctx, tx) // no-op once committed

	if s.lockTimeout > 0 {
		// SET LOCAL does not accept bind parameters.
		if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = "+strconv.FormatInt(s.lockTimeout.Milliseconds(), 10)); err != nil {
			return txError("failed to set lock timeout", err)
		}
	}

	if err := fn(ctx, NewRepositoryProvider(tx)); err != nil {
		return err
	}
	return Commit(ctx, tx)
}

// Repositories returns repositories that run each statement on its own.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return s.repos
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
