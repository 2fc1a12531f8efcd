package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// translateError maps driver errors onto the apperrors sentinels. The
// driver error text is kept for the logs.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	code := sqliteErr.Code()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrDuplicate, err)
	case code&0xff == sqlite3.SQLITE_CONSTRAINT:
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrIntegrityConflict, err)
	case code&0xff == sqlite3.SQLITE_BUSY, code&0xff == sqlite3.SQLITE_LOCKED:
		return fmt.Errorf("%s: %w: %v", op, apperrors.ErrStoreBusy, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
