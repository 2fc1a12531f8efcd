package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(q querier) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `id, name, account_type, parent_id, description, is_system, created_at`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var (
		acc         domain.Account
		accountType string
	)
	err := row.Scan(&acc.ID, &acc.Name, &accountType, &acc.ParentID, &acc.Description, &acc.IsSystem, &acc.CreatedAt)
	acc.Type = domain.AccountType(accountType)
	return acc, err
}

// SaveAccount inserts a new account. A taken name is reported as apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	query := `
		INSERT INTO accounts (name, account_type, parent_id, description, is_system)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	return r.insertReturningID(ctx, "failed to save account "+account.Name, query,
		account.Name,
		string(account.Type),
		account.ParentID,
		account.Description,
		account.IsSystem,
	)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1;`, accountID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find account %d", accountID), err)
	}
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	acc, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE name = $1;`, name))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find account %q", name), err)
	}
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	accounts := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1);`, accountIDs)
	if err != nil {
		return nil, translateError("failed to query accounts by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[acc.ID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate accounts", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.q.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY account_type, name;`)
	if err != nil {
		return nil, translateError("failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate accounts", err)
	}
	return accounts, nil
}

// LockAccountsForUpdate takes row locks on the accounts in id order so two
// writers touching the same pair cannot deadlock.
func (r *PgxAccountRepository) LockAccountsForUpdate(ctx context.Context, accountIDs []int64) error {
	rows, err := r.q.Query(ctx, `SELECT id FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE;`, accountIDs)
	if err != nil {
		return translateError("failed to lock accounts", err)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return translateError("failed to lock accounts", err)
	}

	found := make(map[int64]struct{}, len(locked))
	for _, id := range locked {
		found[id] = struct{}{}
	}
	for _, id := range accountIDs {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
