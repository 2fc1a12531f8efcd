package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(q querier) *reportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	return collect(ctx, r.q, "query account balances",
		func(row pgx.CollectableRow) (domain.AccountBalance, error) {
			var (
				b           domain.AccountBalance
				accountType string
			)
			err := row.Scan(&b.AccountID, &b.Name, &accountType, &b.Balance)
			b.Type = domain.AccountType(accountType)
			return b, err
		}, `
		SELECT account_id, account_name, account_type, balance
		FROM v_account_balances
		ORDER BY account_type, account_name;`)
}

// MonthlySpending filters on entry dates, so it reads the base tables rather
// than v_monthly_spending.
func (r *reportingRepository) MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error) {
	conds := []string{"a.account_type = 'EXPENSE'"}
	var args []any
	if filter.StartDate != nil {
		args = append(args, domain.TruncateDate(*filter.StartDate))
		conds = append(conds, fmt.Sprintf("je.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, domain.TruncateDate(*filter.EndDate))
		conds = append(conds, fmt.Sprintf("je.date <= $%d", len(args)))
	}

	query := `
		SELECT to_char(je.date, 'YYYY-MM') AS month,
		       COALESCE(c.name, '` + domain.UncategorizedLabel + `') AS category_name,
		       SUM(be.amount) AS total
		FROM book_entries be
		JOIN journal_entries je ON je.id = be.journal_entry_id
		JOIN accounts a ON a.id = be.account_id
		LEFT JOIN categories c ON c.id = je.category_id
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY 1, 2
		ORDER BY 1 DESC, 3 DESC, 2;`

	return collect(ctx, r.q, "query monthly spending",
		func(row pgx.CollectableRow) (domain.MonthlySpending, error) {
			var s domain.MonthlySpending
			err := row.Scan(&s.Month, &s.CategoryName, &s.Total)
			return s, err
		}, query, args...)
}

func (r *reportingRepository) CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error) {
	return collect(ctx, r.q, "query category balances",
		func(row pgx.CollectableRow) (domain.CategoryBalance, error) {
			var b domain.CategoryBalance
			err := row.Scan(&b.CategoryName, &b.Total)
			return b, err
		}, `
		SELECT category_name, SUM(total) AS total
		FROM v_monthly_spending
		GROUP BY category_name
		ORDER BY total DESC, category_name;`)
}
