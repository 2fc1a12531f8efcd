package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and book entry data.
func newPgxJournalRepository(q querier) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts the header, then sends every line in one batch. The
// balance constraint trigger is deferred to commit, so callers must run this
// inside WithinTx for the check to cover the whole entry.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error) {
	entryID, err := r.insertReturningID(ctx, "failed to insert journal entry", `
		INSERT INTO journal_entries (date, description, reference, category_id, import_batch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		domain.TruncateDate(header.Date),
		header.Description,
		header.Reference,
		header.CategoryID,
		header.ImportBatchID,
	)
	if err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO book_entries (journal_entry_id, account_id, amount) VALUES ($1, $2, $3);`
	for _, line := range lines {
		batch.Queue(lineQuery, entryID, line.AccountID, line.Amount)
	}

	// Close reports the first failing command of the batch.
	br := r.q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, translateError(fmt.Sprintf("failed to insert lines of journal entry %d", entryID), err)
	}
	return entryID, nil
}

func (r *PgxJournalRepository) UpdateEntryCategory(ctx context.Context, entryID int64, categoryID *int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE journal_entries SET category_id = $1 WHERE id = $2;`, categoryID, entryID)
	if err != nil {
		return translateError(fmt.Sprintf("failed to update category of journal entry %d", entryID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
	}
	return nil
}

const entryColumns = `je.id, je.date, je.description, je.reference, je.category_id, je.import_batch_id, je.created_at`

func entryDest(e *domain.JournalEntry) []any {
	return []any{&e.ID, &e.Date, &e.Description, &e.Reference, &e.CategoryID, &e.ImportBatchID, &e.CreatedAt}
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := r.q.QueryRow(ctx, `SELECT `+entryColumns+` FROM journal_entries je WHERE je.id = $1;`, entryID).
		Scan(entryDest(&entry)...)
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find journal entry %d", entryID), err)
	}
	return &entry, nil
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.BookEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT be.id, be.journal_entry_id, be.account_id, a.name, be.amount
		FROM book_entries be
		JOIN accounts a ON a.id = be.account_id
		WHERE be.journal_entry_id = $1
		ORDER BY be.id;`, entryID)
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to query lines of journal entry %d", entryID), err)
	}
	defer rows.Close()

	lines := []domain.BookEntry{}
	for rows.Next() {
		var line domain.BookEntry
		if err := rows.Scan(&line.ID, &line.JournalEntryID, &line.AccountID, &line.AccountName, &line.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan book entry row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate book entries", err)
	}
	return lines, nil
}

const listItemSelect = `
	SELECT ` + entryColumns + `, c.name,
	       COALESCE((
	           SELECT string_agg(a.name || ':' || to_char(be.amount, 'FM999999999999990.00'), '|' ORDER BY be.id)
	           FROM book_entries be
	           JOIN accounts a ON a.id = be.account_id
	           WHERE be.journal_entry_id = je.id
	       ), '') AS entries_summary
	FROM journal_entries je
	LEFT JOIN categories c ON c.id = je.category_id
`

func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.StartDate != nil {
		conds = append(conds, "je.date >= "+arg(domain.TruncateDate(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		conds = append(conds, "je.date <= "+arg(domain.TruncateDate(*filter.EndDate)))
	}
	if filter.CategoryID != nil {
		conds = append(conds, "je.category_id = "+arg(*filter.CategoryID))
	}
	if filter.AccountID != nil {
		conds = append(conds, "je.id IN (SELECT journal_entry_id FROM book_entries WHERE account_id = "+arg(*filter.AccountID)+")")
	}

	query := listItemSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	page = page.Normalize()
	query += " ORDER BY je.date DESC, je.id DESC LIMIT " + arg(page.Limit) + " OFFSET " + arg(page.Offset) + ";"

	return r.queryListItems(ctx, "list journal entries", query, args...)
}

func (r *PgxJournalRepository) SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error) {
	q := listItemSelect + ` WHERE je.description ILIKE '%' || $1 || '%' ORDER BY je.date DESC, je.id DESC`
	args := []any{escapeLike(query)}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.queryListItems(ctx, "search journal entries", q+";", args...)
}

func (r *PgxJournalRepository) queryListItems(ctx context.Context, op, query string, args ...any) ([]domain.EntryListItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError("failed to "+op, err)
	}
	defer rows.Close()

	items := []domain.EntryListItem{}
	for rows.Next() {
		var item domain.EntryListItem
		dest := append(entryDest(&item.JournalEntry), &item.CategoryName, &item.EntriesSummary)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate journal entries", err)
	}
	return items, nil
}

func (r *PgxJournalRepository) SumAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM book_entries WHERE account_id = $1;`, accountID).
		Scan(&balance)
	if err != nil {
		return decimal.Zero, translateError(fmt.Sprintf("failed to sum balance of account %d", accountID), err)
	}
	return balance, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
