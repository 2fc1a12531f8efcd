package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type JournalRepository struct {
	BaseRepository
}

func newJournalRepository(q querier) *JournalRepository {
	return &JournalRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure JournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

// SaveEntry writes the header unposted, then the lines, then marks the entry
// posted. Marking it posted fires the balance trigger, which aborts the
// statement if the lines do not sum to zero.
func (r *JournalRepository) SaveEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error) {
	amounts := make([]decimal.Decimal, len(lines))
	for i, line := range lines {
		amounts[i] = line.Amount
	}
	cents, err := toCents(amounts...)
	if err != nil {
		return 0, err
	}

	entryID, err := r.insert(ctx, "failed to insert journal entry", `
		INSERT INTO journal_entries (date, description, reference, category_id, import_batch_id, posted)
		VALUES (?, ?, ?, ?, ?, 0);
	`,
		mapping.ToDateString(header.Date),
		header.Description,
		mapping.ToNullString(header.Reference),
		mapping.ToNullInt64(header.CategoryID),
		mapping.ToNullInt64(header.ImportBatchID),
	)
	if err != nil {
		return 0, err
	}

	lineQuery := `INSERT INTO book_entries (journal_entry_id, account_id, amount_cents) VALUES (?, ?, ?);`
	for i, line := range lines {
		if _, err := r.insert(ctx, fmt.Sprintf("failed to insert line %d of journal entry %d", i, entryID), lineQuery,
			entryID, line.AccountID, cents[i]); err != nil {
			return 0, err
		}
	}

	if _, err := r.exec(ctx, fmt.Sprintf("failed to post journal entry %d", entryID),
		`UPDATE journal_entries SET posted = 1 WHERE id = ?;`, entryID); err != nil {
		return 0, err
	}
	return entryID, nil
}

func (r *JournalRepository) UpdateEntryCategory(ctx context.Context, entryID int64, categoryID *int64) error {
	n, err := r.exec(ctx, fmt.Sprintf("failed to update category of journal entry %d", entryID),
		`UPDATE journal_entries SET category_id = ? WHERE id = ?;`, mapping.ToNullInt64(categoryID), entryID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: journal entry %d", apperrors.ErrNotFound, entryID)
	}
	return nil
}

const entryColumns = `je.id, je.date, je.description, je.reference, je.category_id, je.import_batch_id, je.created_at`

func scanEntry(row rowScanner, extra ...any) (domain.JournalEntry, error) {
	var (
		entry         domain.JournalEntry
		date          string
		reference     sql.NullString
		categoryID    sql.NullInt64
		importBatchID sql.NullInt64
		createdAt     string
	)
	dest := append([]any{&entry.ID, &date, &entry.Description, &reference, &categoryID, &importBatchID, &createdAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.JournalEntry{}, err
	}
	d, err := mapping.FromDateString(date)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("bad date %q on journal entry %d: %w", date, entry.ID, err)
	}
	entry.Date = d
	entry.Reference = mapping.FromNullString(reference)
	entry.CategoryID = mapping.FromNullInt64(categoryID)
	entry.ImportBatchID = mapping.FromNullInt64(importBatchID)
	entry.CreatedAt = mapping.FromTimestampString(createdAt)
	return entry, nil
}

func (r *JournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries je WHERE je.id = ?;`
	entry, err := scanEntry(r.q.QueryRowContext(ctx, query, entryID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find journal entry %d", entryID), err)
	}
	return &entry, nil
}

func (r *JournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.BookEntry, error) {
	query := `
		SELECT be.id, be.journal_entry_id, be.account_id, a.name, be.amount_cents
		FROM book_entries be
		JOIN accounts a ON a.id = be.account_id
		WHERE be.journal_entry_id = ?
		ORDER BY be.id;
	`
	rows, err := r.q.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to query lines of journal entry %d", entryID), err)
	}
	defer rows.Close()

	lines := []domain.BookEntry{}
	for rows.Next() {
		var (
			line  domain.BookEntry
			cents int64
		)
		if err := rows.Scan(&line.ID, &line.JournalEntryID, &line.AccountID, &line.AccountName, &cents); err != nil {
			return nil, wrapScan("find lines", err)
		}
		line.Amount = mapping.FromCents(cents)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate lines", err)
	}
	return lines, nil
}

// listItemSelect renders each line as "account:amount" joined by "|" in line order.
const listItemSelect = `
	SELECT ` + entryColumns + `, c.name,
	       COALESCE((
	           SELECT GROUP_CONCAT(a.name || ':' || printf('%.2f', be.amount_cents / 100.0), '|' ORDER BY be.id)
	           FROM book_entries be
	           JOIN accounts a ON a.id = be.account_id
	           WHERE be.journal_entry_id = je.id
	       ), '') AS entries_summary
	FROM journal_entries je
	LEFT JOIN categories c ON c.id = je.category_id
`

func (r *JournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.StartDate != nil {
		conds = append(conds, "je.date >= ?")
		args = append(args, mapping.ToDateString(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "je.date <= ?")
		args = append(args, mapping.ToDateString(*filter.EndDate))
	}
	if filter.CategoryID != nil {
		conds = append(conds, "je.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.AccountID != nil {
		conds = append(conds, "je.id IN (SELECT journal_entry_id FROM book_entries WHERE account_id = ?)")
		args = append(args, *filter.AccountID)
	}

	query := listItemSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY je.date DESC, je.id DESC LIMIT ? OFFSET ?;"
	page = page.Normalize()
	args = append(args, page.Limit, page.Offset)

	return r.queryListItems(ctx, "list journal entries", query, args...)
}

// SearchEntries matches descriptions case-insensitively for ASCII text.
func (r *JournalRepository) SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error) {
	if limit <= 0 {
		limit = -1 // no limit
	}
	q := listItemSelect + ` WHERE je.description LIKE '%' || ? || '%' ESCAPE '\' ORDER BY je.date DESC, je.id DESC LIMIT ?;`
	return r.queryListItems(ctx, "search journal entries", q, escapeLike(query), limit)
}

func (r *JournalRepository) queryListItems(ctx context.Context, op, query string, args ...any) ([]domain.EntryListItem, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("failed to "+op, err)
	}
	defer rows.Close()

	items := []domain.EntryListItem{}
	for rows.Next() {
		var (
			categoryName sql.NullString
			summary      string
		)
		entry, err := scanEntry(rows, &categoryName, &summary)
		if err != nil {
			return nil, wrapScan(op, err)
		}
		items = append(items, domain.EntryListItem{
			JournalEntry:   entry,
			CategoryName:   mapping.FromNullString(categoryName),
			EntriesSummary: summary,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate journal entries", err)
	}
	return items, nil
}

func (r *JournalRepository) SumAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var cents int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM book_entries WHERE account_id = ?;`, accountID).Scan(&cents)
	if err != nil {
		return decimal.Zero, translateError(fmt.Sprintf("failed to sum balance of account %d", accountID), err)
	}
	return mapping.FromCents(cents), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
