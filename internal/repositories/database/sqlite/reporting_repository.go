package sqlite

import (
	"context"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(q querier) *ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT account_id, account_name, account_type, balance_cents
		FROM v_account_balances
		ORDER BY account_type, account_name;`)
	if err != nil {
		return nil, translateError("failed to query account balances", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var (
			b           domain.AccountBalance
			accountType string
			cents       int64
		)
		if err := rows.Scan(&b.AccountID, &b.Name, &accountType, &cents); err != nil {
			return nil, wrapScan("account balances", err)
		}
		b.Type = domain.AccountType(accountType)
		b.Balance = mapping.FromCents(cents)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate account balances", err)
	}
	return balances, nil
}

// MonthlySpending reads the base tables rather than v_monthly_spending so the
// date range applies to entry dates, not whole months.
func (r *ReportingRepository) MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error) {
	conds := []string{"a.account_type = 'EXPENSE'"}
	var args []any
	if filter.StartDate != nil {
		conds = append(conds, "je.date >= ?")
		args = append(args, mapping.ToDateString(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "je.date <= ?")
		args = append(args, mapping.ToDateString(*filter.EndDate))
	}

	query := `
		SELECT substr(je.date, 1, 7) AS month,
		       COALESCE(c.name, '` + domain.UncategorizedLabel + `') AS category_name,
		       SUM(be.amount_cents) AS total_cents
		FROM book_entries be
		JOIN journal_entries je ON je.id = be.journal_entry_id
		JOIN accounts a ON a.id = be.account_id
		LEFT JOIN categories c ON c.id = je.category_id
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY month, category_name
		ORDER BY month DESC, total_cents DESC, category_name;`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("failed to query monthly spending", err)
	}
	defer rows.Close()

	spending := []domain.MonthlySpending{}
	for rows.Next() {
		var (
			s     domain.MonthlySpending
			cents int64
		)
		if err := rows.Scan(&s.Month, &s.CategoryName, &cents); err != nil {
			return nil, wrapScan("monthly spending", err)
		}
		s.Total = mapping.FromCents(cents)
		spending = append(spending, s)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate monthly spending", err)
	}
	return spending, nil
}

func (r *ReportingRepository) CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT category_name, SUM(total_cents) AS total_cents
		FROM v_monthly_spending
		GROUP BY category_name
		ORDER BY total_cents DESC, category_name;`)
	if err != nil {
		return nil, translateError("failed to query category balances", err)
	}
	defer rows.Close()

	balances := []domain.CategoryBalance{}
	for rows.Next() {
		var (
			b     domain.CategoryBalance
			cents int64
		)
		if err := rows.Scan(&b.CategoryName, &cents); err != nil {
			return nil, wrapScan("category balances", err)
		}
		b.Total = mapping.FromCents(cents)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate category balances", err)
	}
	return balances, nil
}
