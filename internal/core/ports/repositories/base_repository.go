package repositories

import (
	"context"
)

// TransactionManager runs a unit of work. Every repository in the provider
// handed to fn is bound to the same storage transaction, which commits when
// fn returns nil and rolls back otherwise.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}

// Store is a storage backend: repositories for plain reads plus transactions
// for writes.
type Store interface {
	TransactionManager

	// Repositories returns repositories that run each call on its own.
	Repositories() RepositoryProvider

	Close() error
}
