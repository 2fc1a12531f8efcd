package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxPropertyRepository struct {
	BaseRepository
}

func newPgxPropertyRepository(q querier) *PgxPropertyRepository {
	return &PgxPropertyRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PgxPropertyRepository implements portsrepo.PropertyRepositoryFacade
var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

// collect runs query and scans every row with fn.
func collect[T any](ctx context.Context, q querier, op string, fn pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError("failed to "+op, err)
	}
	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, translateError("failed to read "+op, err)
	}
	return items, nil
}

// collectOne is collect for a single row; no row is apperrors.ErrNotFound.
func collectOne[T any](ctx context.Context, q querier, op string, fn pgx.RowToFunc[T], query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, fn)
	if err != nil {
		return nil, translateError(op, err)
	}
	return &item, nil
}

// --- properties ---

const propertyColumns = `id, name, address, property_type, purchase_date, purchase_price, notes, created_at`

func scanProperty(row pgx.CollectableRow) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.PropertyType, &p.PurchaseDate, &p.PurchasePrice, &p.Notes, &p.CreatedAt)
	return p, err
}

func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) (int64, error) {
	var purchaseDate any
	if property.PurchaseDate != nil {
		purchaseDate = domain.TruncateDate(*property.PurchaseDate)
	}
	return r.insertReturningID(ctx, "failed to save property "+property.Name, `
		INSERT INTO properties (name, address, property_type, purchase_date, purchase_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		property.Name,
		property.Address,
		property.PropertyType,
		purchaseDate,
		property.PurchasePrice,
		property.Notes,
	)
}

func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return collectOne(ctx, r.q, fmt.Sprintf("failed to find property %d", propertyID), scanProperty,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1;`, propertyID)
}

func (r *PgxPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return collect(ctx, r.q, "list properties", scanProperty,
		`SELECT `+propertyColumns+` FROM properties ORDER BY name;`)
}

// --- owners ---

func scanOwner(row pgx.CollectableRow) (domain.Owner, error) {
	var o domain.Owner
	err := row.Scan(&o.ID, &o.Name, &o.CreatedAt)
	return o, err
}

// SaveOwner returns the existing id when the name is already taken.
func (r *PgxPropertyRepository) SaveOwner(ctx context.Context, owner domain.Owner) (int64, error) {
	if _, err := r.q.Exec(ctx, `INSERT INTO owners (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, owner.Name); err != nil {
		return 0, translateError("failed to save owner "+owner.Name, err)
	}
	var id int64
	if err := r.q.QueryRow(ctx, `SELECT id FROM owners WHERE name = $1;`, owner.Name).Scan(&id); err != nil {
		return 0, translateError("failed to read back owner "+owner.Name, err)
	}
	return id, nil
}

func (r *PgxPropertyRepository) FindOwnerByID(ctx context.Context, ownerID int64) (*domain.Owner, error) {
	return collectOne(ctx, r.q, fmt.Sprintf("failed to find owner %d", ownerID), scanOwner,
		`SELECT id, name, created_at FROM owners WHERE id = $1;`, ownerID)
}

func (r *PgxPropertyRepository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return collect(ctx, r.q, "list owners", scanOwner, `SELECT id, name, created_at FROM owners ORDER BY name;`)
}

// --- ownership ---

func (r *PgxPropertyRepository) SaveOwnership(ctx context.Context, ownership domain.PropertyOwnership) (int64, error) {
	return r.insertReturningID(ctx, "failed to save property ownership", `
		INSERT INTO property_ownership (property_id, owner_id, capital_account_id)
		VALUES ($1, $2, $3)
		RETURNING id;`,
		ownership.PropertyID, ownership.OwnerID, ownership.CapitalAccountID)
}

func (r *PgxPropertyRepository) ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error) {
	return r.queryOwnership(ctx, "po.property_id = $1", propertyID)
}

func (r *PgxPropertyRepository) ListOwnershipByOwner(ctx context.Context, ownerID int64) ([]domain.PropertyOwnership, error) {
	return r.queryOwnership(ctx, "po.owner_id = $1", ownerID)
}

func (r *PgxPropertyRepository) queryOwnership(ctx context.Context, cond string, arg int64) ([]domain.PropertyOwnership, error) {
	return collect(ctx, r.q, "list property ownership",
		func(row pgx.CollectableRow) (domain.PropertyOwnership, error) {
			var po domain.PropertyOwnership
			err := row.Scan(&po.ID, &po.PropertyID, &po.OwnerID, &po.OwnerName, &po.CapitalAccountID)
			return po, err
		}, `
		SELECT po.id, po.property_id, po.owner_id, o.name, po.capital_account_id
		FROM property_ownership po
		JOIN owners o ON o.id = po.owner_id
		WHERE `+cond+`
		ORDER BY po.id;`, arg)
}

// --- mortgages ---

const mortgageColumns = `id, property_id, lender, original_amount, start_date, term_months, liability_account_id, created_at`

func scanMortgage(row pgx.CollectableRow) (domain.Mortgage, error) {
	var m domain.Mortgage
	err := row.Scan(&m.ID, &m.PropertyID, &m.Lender, &m.OriginalAmount, &m.StartDate, &m.TermMonths,
		&m.LiabilityAccountID, &m.CreatedAt)
	return m, err
}

func (r *PgxPropertyRepository) SaveMortgage(ctx context.Context, mortgage domain.Mortgage) (int64, error) {
	return r.insertReturningID(ctx, "failed to save mortgage", `
		INSERT INTO mortgages (property_id, lender, original_amount, start_date, term_months, liability_account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		mortgage.PropertyID,
		mortgage.Lender,
		mortgage.OriginalAmount,
		domain.TruncateDate(mortgage.StartDate),
		mortgage.TermMonths,
		mortgage.LiabilityAccountID,
	)
}

func (r *PgxPropertyRepository) FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error) {
	return collectOne(ctx, r.q, fmt.Sprintf("failed to find mortgage %d", mortgageID), scanMortgage,
		`SELECT `+mortgageColumns+` FROM mortgages WHERE id = $1;`, mortgageID)
}

func (r *PgxPropertyRepository) ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error) {
	return collect(ctx, r.q, "list mortgages", scanMortgage,
		`SELECT `+mortgageColumns+` FROM mortgages WHERE property_id = $1 ORDER BY start_date, id;`, propertyID)
}

func (r *PgxPropertyRepository) SaveMortgageRate(ctx context.Context, rate domain.MortgageRate) (int64, error) {
	return r.insertReturningID(ctx, "failed to save mortgage rate", `
		INSERT INTO mortgage_rate_history (mortgage_id, rate, effective_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		rate.MortgageID, rate.Rate, domain.TruncateDate(rate.EffectiveDate), rate.Notes)
}

func (r *PgxPropertyRepository) ListMortgageRates(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error) {
	return collect(ctx, r.q, "list mortgage rates",
		func(row pgx.CollectableRow) (domain.MortgageRate, error) {
			var mr domain.MortgageRate
			err := row.Scan(&mr.ID, &mr.MortgageID, &mr.Rate, &mr.EffectiveDate, &mr.Notes)
			return mr, err
		}, `
		SELECT id, mortgage_id, rate, effective_date, notes
		FROM mortgage_rate_history
		WHERE mortgage_id = $1
		ORDER BY effective_date, id;`, mortgageID)
}

// --- valuations ---

const valuationColumns = `id, property_id, valuation_date, valuation, source, notes`

func scanValuation(row pgx.CollectableRow) (domain.PropertyValuation, error) {
	var v domain.PropertyValuation
	err := row.Scan(&v.ID, &v.PropertyID, &v.ValuationDate, &v.Amount, &v.Source, &v.Notes)
	return v, err
}

func (r *PgxPropertyRepository) SaveValuation(ctx context.Context, valuation domain.PropertyValuation) (int64, error) {
	return r.insertReturningID(ctx, "failed to save property valuation", `
		INSERT INTO property_valuations (property_id, valuation, valuation_date, source, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		valuation.PropertyID,
		valuation.Amount,
		domain.TruncateDate(valuation.ValuationDate),
		valuation.Source,
		valuation.Notes,
	)
}

// LatestValuation breaks ties on the same date by the most recently recorded row.
func (r *PgxPropertyRepository) LatestValuation(ctx context.Context, propertyID int64) (*domain.PropertyValuation, error) {
	return collectOne(ctx, r.q, fmt.Sprintf("failed to find latest valuation of property %d", propertyID), scanValuation, `
		SELECT `+valuationColumns+` FROM property_valuations
		WHERE property_id = $1
		ORDER BY valuation_date DESC, id DESC
		LIMIT 1;`, propertyID)
}

func (r *PgxPropertyRepository) ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error) {
	return collect(ctx, r.q, "list property valuations", scanValuation, `
		SELECT `+valuationColumns+` FROM property_valuations
		WHERE property_id = $1
		ORDER BY valuation_date DESC, id DESC;`, propertyID)
}

// --- transfers and snapshots ---

func (r *PgxPropertyRepository) SaveTransfer(ctx context.Context, transfer domain.PropertyTransfer) (int64, error) {
	return r.insertReturningID(ctx, "failed to save property transfer", `
		INSERT INTO property_transfers (from_property_id, to_property_id, owner_id, amount, journal_entry_id, transfer_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		transfer.FromPropertyID,
		transfer.ToPropertyID,
		transfer.OwnerID,
		transfer.Amount,
		transfer.JournalEntryID,
		domain.TruncateDate(transfer.TransferDate),
		transfer.Description,
	)
}

func (r *PgxPropertyRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PropertyID != nil {
		args = append(args, *filter.PropertyID)
		conds = append(conds, fmt.Sprintf("(pt.from_property_id = $%d OR pt.to_property_id = $%d)", len(args), len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conds = append(conds, fmt.Sprintf("pt.owner_id = $%d", len(args)))
	}

	query := `
		SELECT pt.id, pt.from_property_id, pt.to_property_id, pt.owner_id, pt.amount,
		       pt.journal_entry_id, pt.transfer_date, COALESCE(pt.description, ''),
		       fp.name, tp.name, o.name, pt.created_at
		FROM property_transfers pt
		JOIN properties fp ON fp.id = pt.from_property_id
		JOIN properties tp ON tp.id = pt.to_property_id
		JOIN owners o ON o.id = pt.owner_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY pt.transfer_date DESC, pt.id DESC;"

	return collect(ctx, r.q, "list property transfers",
		func(row pgx.CollectableRow) (domain.PropertyTransfer, error) {
			var t domain.PropertyTransfer
			err := row.Scan(&t.ID, &t.FromPropertyID, &t.ToPropertyID, &t.OwnerID, &t.Amount, &t.JournalEntryID,
				&t.TransferDate, &t.Description, &t.FromPropertyName, &t.ToPropertyName, &t.OwnerName, &t.CreatedAt)
			return t, err
		}, query, args...)
}

func (r *PgxPropertyRepository) SaveEquitySnapshot(ctx context.Context, snapshot domain.EquitySnapshot) (int64, error) {
	return r.insertReturningID(ctx, "failed to save equity snapshot", `
		INSERT INTO equity_snapshots (property_id, owner_id, snapshot_date, market_value, mortgage_balance,
		                              capital_balance, ownership_pct, equity_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;`,
		snapshot.PropertyID,
		snapshot.OwnerID,
		domain.TruncateDate(snapshot.SnapshotDate),
		snapshot.MarketValue,
		snapshot.MortgageBalance,
		snapshot.CapitalBalance,
		snapshot.OwnershipPct.Round(4),
		snapshot.EquityAmount,
	)
}

// --- allocation rules ---

func (r *PgxPropertyRepository) ListAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error) {
	return collect(ctx, r.q, "list allocation rules",
		func(row pgx.CollectableRow) (domain.ExpenseAllocationRule, error) {
			var rule domain.ExpenseAllocationRule
			err := row.Scan(&rule.ID, &rule.PropertyID, &rule.OwnerID, &rule.ExpenseType, &rule.AllocationPct)
			return rule, err
		}, `
		SELECT id, property_id, owner_id, expense_type, allocation_pct
		FROM expense_allocation_rules
		WHERE property_id = $1
		ORDER BY expense_type, owner_id;`, propertyID)
}

func (r *PgxPropertyRepository) UpsertAllocationRule(ctx context.Context, rule domain.ExpenseAllocationRule) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expense_allocation_rules (property_id, owner_id, expense_type, allocation_pct)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (property_id, owner_id, expense_type)
		DO UPDATE SET allocation_pct = EXCLUDED.allocation_pct;`,
		rule.PropertyID, rule.OwnerID, rule.ExpenseType, rule.AllocationPct)
	if err != nil {
		return translateError("failed to save allocation rule", err)
	}
	return nil
}

func (r *PgxPropertyRepository) DeleteAllocationRules(ctx context.Context, propertyID int64, expenseType string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM expense_allocation_rules WHERE property_id = $1 AND expense_type = $2;`, propertyID, expenseType)
	if err != nil {
		return translateError("failed to delete allocation rules", err)
	}
	return nil
}
