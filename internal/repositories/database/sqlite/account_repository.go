package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

type AccountRepository struct {
	BaseRepository
}

func newAccountRepository(q querier) *AccountRepository {
	return &AccountRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure AccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountColumns = `id, name, account_type, parent_id, description, is_system, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		acc         domain.Account
		accountType string
		parentID    sql.NullInt64
		description sql.NullString
		isSystem    int
		createdAt   string
	)
	if err := row.Scan(&acc.ID, &acc.Name, &accountType, &parentID, &description, &isSystem, &createdAt); err != nil {
		return domain.Account{}, err
	}
	acc.Type = domain.AccountType(accountType)
	acc.ParentID = mapping.FromNullInt64(parentID)
	acc.Description = mapping.FromNullString(description)
	acc.IsSystem = isSystem != 0
	acc.CreatedAt = mapping.FromTimestampString(createdAt)
	return acc, nil
}

// SaveAccount inserts a new account. A taken name is reported as apperrors.ErrDuplicate.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	query := `
		INSERT INTO accounts (name, account_type, parent_id, description, is_system)
		VALUES (?, ?, ?, ?, ?);
	`
	isSystem := 0
	if account.IsSystem {
		isSystem = 1
	}
	return r.insert(ctx, "failed to save account "+account.Name, query,
		account.Name,
		string(account.Type),
		mapping.ToNullInt64(account.ParentID),
		mapping.ToNullString(account.Description),
		isSystem,
	)
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?;`
	acc, err := scanAccount(r.q.QueryRowContext(ctx, query, accountID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find account %d", accountID), err)
	}
	return &acc, nil
}

func (r *AccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = ?;`
	acc, err := scanAccount(r.q.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find account %q", name), err)
	}
	return &acc, nil
}

// FindAccountsByIDs returns the accounts that exist among accountIDs.
func (r *AccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	accounts := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id IN (` + placeholders(len(accountIDs)) + `);`
	rows, err := r.q.QueryContext(ctx, query, int64Args(accountIDs)...)
	if err != nil {
		return nil, translateError("failed to query accounts by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, wrapScan("find accounts by ids", err)
		}
		accounts[acc.ID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate accounts", err)
	}
	return accounts, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_type, name;`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError("failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, wrapScan("list accounts", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate accounts", err)
	}
	return accounts, nil
}

// LockAccountsForUpdate is a no-op here: write transactions begin IMMEDIATE
// and already hold the database write lock. Missing accounts still fail.
func (r *AccountRepository) LockAccountsForUpdate(ctx context.Context, accountIDs []int64) error {
	found, err := r.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return err
	}
	for _, id := range accountIDs {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
