package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PropertyRepository struct {
	BaseRepository
}

func newPropertyRepository(q querier) *PropertyRepository {
	return &PropertyRepository{BaseRepository: BaseRepository{q: q}}
}

// Ensure PropertyRepository implements portsrepo.PropertyRepositoryFacade
var _ portsrepo.PropertyRepositoryFacade = (*PropertyRepository)(nil)

// Percentages and rates live in REAL columns; they only ever carry a few
// decimal places so the float round trip is exact enough.
func toReal(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func fromReal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// toCents converts amounts to minor units, stopping at the first that does not fit.
func toCents(amounts ...decimal.Decimal) ([]int64, error) {
	cents := make([]int64, len(amounts))
	for i, amount := range amounts {
		c, err := mapping.ToCents(amount)
		if err != nil {
			return nil, err
		}
		cents[i] = c
	}
	return cents, nil
}

// --- properties ---

const propertyColumns = `id, name, address, property_type, purchase_date, purchase_price_cents, notes, created_at`

func scanProperty(row rowScanner) (domain.Property, error) {
	var (
		p            domain.Property
		address      sql.NullString
		purchaseDate sql.NullString
		price        sql.NullInt64
		notes        sql.NullString
		createdAt    string
	)
	if err := row.Scan(&p.ID, &p.Name, &address, &p.PropertyType, &purchaseDate, &price, &notes, &createdAt); err != nil {
		return domain.Property{}, err
	}
	d, err := mapping.FromNullDateString(purchaseDate)
	if err != nil {
		return domain.Property{}, err
	}
	p.Address = mapping.FromNullString(address)
	p.PurchaseDate = d
	p.PurchasePrice = mapping.FromNullCents(price)
	p.Notes = mapping.FromNullString(notes)
	p.CreatedAt = mapping.FromTimestampString(createdAt)
	return p, nil
}

func (r *PropertyRepository) SaveProperty(ctx context.Context, property domain.Property) (int64, error) {
	price, err := mapping.ToNullCents(property.PurchasePrice)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, "failed to save property "+property.Name, `
		INSERT INTO properties (name, address, property_type, purchase_date, purchase_price_cents, notes)
		VALUES (?, ?, ?, ?, ?, ?);`,
		property.Name,
		mapping.ToNullString(property.Address),
		property.PropertyType,
		mapping.ToNullDateString(property.PurchaseDate),
		price,
		mapping.ToNullString(property.Notes),
	)
}

func (r *PropertyRepository) FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	p, err := scanProperty(r.q.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?;`, propertyID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find property %d", propertyID), err)
	}
	return &p, nil
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY name;`)
	if err != nil {
		return nil, translateError("failed to list properties", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, wrapScan("list properties", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate properties", err)
	}
	return properties, nil
}

// --- owners ---

func scanOwner(row rowScanner) (domain.Owner, error) {
	var (
		o         domain.Owner
		createdAt string
	)
	if err := row.Scan(&o.ID, &o.Name, &createdAt); err != nil {
		return domain.Owner{}, err
	}
	o.CreatedAt = mapping.FromTimestampString(createdAt)
	return o, nil
}

// SaveOwner returns the existing id when the name is already taken.
func (r *PropertyRepository) SaveOwner(ctx context.Context, owner domain.Owner) (int64, error) {
	if _, err := r.exec(ctx, "failed to save owner "+owner.Name,
		`INSERT INTO owners (name) VALUES (?) ON CONFLICT (name) DO NOTHING;`, owner.Name); err != nil {
		return 0, err
	}
	var id int64
	if err := r.q.QueryRowContext(ctx, `SELECT id FROM owners WHERE name = ?;`, owner.Name).Scan(&id); err != nil {
		return 0, translateError("failed to read back owner "+owner.Name, err)
	}
	return id, nil
}

func (r *PropertyRepository) FindOwnerByID(ctx context.Context, ownerID int64) (*domain.Owner, error) {
	o, err := scanOwner(r.q.QueryRowContext(ctx, `SELECT id, name, created_at FROM owners WHERE id = ?;`, ownerID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find owner %d", ownerID), err)
	}
	return &o, nil
}

func (r *PropertyRepository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM owners ORDER BY name;`)
	if err != nil {
		return nil, translateError("failed to list owners", err)
	}
	defer rows.Close()

	owners := []domain.Owner{}
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, wrapScan("list owners", err)
		}
		owners = append(owners, o)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate owners", err)
	}
	return owners, nil
}

// --- ownership ---

func (r *PropertyRepository) SaveOwnership(ctx context.Context, ownership domain.PropertyOwnership) (int64, error) {
	return r.insert(ctx, "failed to save property ownership", `
		INSERT INTO property_ownership (property_id, owner_id, capital_account_id)
		VALUES (?, ?, ?);`,
		ownership.PropertyID, ownership.OwnerID, ownership.CapitalAccountID)
}

func (r *PropertyRepository) ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error) {
	return r.queryOwnership(ctx, "po.property_id = ?", propertyID)
}

func (r *PropertyRepository) ListOwnershipByOwner(ctx context.Context, ownerID int64) ([]domain.PropertyOwnership, error) {
	return r.queryOwnership(ctx, "po.owner_id = ?", ownerID)
}

func (r *PropertyRepository) queryOwnership(ctx context.Context, cond string, arg int64) ([]domain.PropertyOwnership, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT po.id, po.property_id, po.owner_id, o.name, po.capital_account_id
		FROM property_ownership po
		JOIN owners o ON o.id = po.owner_id
		WHERE `+cond+`
		ORDER BY po.id;`, arg)
	if err != nil {
		return nil, translateError("failed to list property ownership", err)
	}
	defer rows.Close()

	links := []domain.PropertyOwnership{}
	for rows.Next() {
		var po domain.PropertyOwnership
		if err := rows.Scan(&po.ID, &po.PropertyID, &po.OwnerID, &po.OwnerName, &po.CapitalAccountID); err != nil {
			return nil, wrapScan("list property ownership", err)
		}
		links = append(links, po)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate property ownership", err)
	}
	return links, nil
}

// --- mortgages ---

const mortgageColumns = `id, property_id, lender, original_amount_cents, start_date, term_months, liability_account_id, created_at`

func scanMortgage(row rowScanner) (domain.Mortgage, error) {
	var (
		m          domain.Mortgage
		original   int64
		startDate  string
		termMonths sql.NullInt64
		createdAt  string
	)
	if err := row.Scan(&m.ID, &m.PropertyID, &m.Lender, &original, &startDate, &termMonths,
		&m.LiabilityAccountID, &createdAt); err != nil {
		return domain.Mortgage{}, err
	}
	d, err := mapping.FromDateString(startDate)
	if err != nil {
		return domain.Mortgage{}, err
	}
	m.OriginalAmount = mapping.FromCents(original)
	m.StartDate = d
	if termMonths.Valid {
		t := int(termMonths.Int64)
		m.TermMonths = &t
	}
	m.CreatedAt = mapping.FromTimestampString(createdAt)
	return m, nil
}

func (r *PropertyRepository) SaveMortgage(ctx context.Context, mortgage domain.Mortgage) (int64, error) {
	var termMonths sql.NullInt64
	if mortgage.TermMonths != nil {
		termMonths = sql.NullInt64{Int64: int64(*mortgage.TermMonths), Valid: true}
	}
	amount, err := mapping.ToCents(mortgage.OriginalAmount)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, "failed to save mortgage", `
		INSERT INTO mortgages (property_id, lender, original_amount_cents, start_date, term_months, liability_account_id)
		VALUES (?, ?, ?, ?, ?, ?);`,
		mortgage.PropertyID,
		mortgage.Lender,
		amount,
		mapping.ToDateString(mortgage.StartDate),
		termMonths,
		mortgage.LiabilityAccountID,
	)
}

func (r *PropertyRepository) FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error) {
	m, err := scanMortgage(r.q.QueryRowContext(ctx, `SELECT `+mortgageColumns+` FROM mortgages WHERE id = ?;`, mortgageID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find mortgage %d", mortgageID), err)
	}
	return &m, nil
}

func (r *PropertyRepository) ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+mortgageColumns+` FROM mortgages WHERE property_id = ? ORDER BY start_date, id;`, propertyID)
	if err != nil {
		return nil, translateError("failed to list mortgages", err)
	}
	defer rows.Close()

	mortgages := []domain.Mortgage{}
	for rows.Next() {
		m, err := scanMortgage(rows)
		if err != nil {
			return nil, wrapScan("list mortgages", err)
		}
		mortgages = append(mortgages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate mortgages", err)
	}
	return mortgages, nil
}

func (r *PropertyRepository) SaveMortgageRate(ctx context.Context, rate domain.MortgageRate) (int64, error) {
	return r.insert(ctx, "failed to save mortgage rate", `
		INSERT INTO mortgage_rate_history (mortgage_id, rate, effective_date, notes)
		VALUES (?, ?, ?, ?);`,
		rate.MortgageID, toReal(rate.Rate), mapping.ToDateString(rate.EffectiveDate), mapping.ToNullString(rate.Notes))
}

func (r *PropertyRepository) ListMortgageRates(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, mortgage_id, rate, effective_date, notes
		FROM mortgage_rate_history
		WHERE mortgage_id = ?
		ORDER BY effective_date, id;`, mortgageID)
	if err != nil {
		return nil, translateError("failed to list mortgage rates", err)
	}
	defer rows.Close()

	rates := []domain.MortgageRate{}
	for rows.Next() {
		var (
			mr        domain.MortgageRate
			rate      float64
			effective string
			notes     sql.NullString
		)
		if err := rows.Scan(&mr.ID, &mr.MortgageID, &rate, &effective, &notes); err != nil {
			return nil, wrapScan("list mortgage rates", err)
		}
		d, err := mapping.FromDateString(effective)
		if err != nil {
			return nil, wrapScan("list mortgage rates", err)
		}
		mr.Rate = fromReal(rate)
		mr.EffectiveDate = d
		mr.Notes = mapping.FromNullString(notes)
		rates = append(rates, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate mortgage rates", err)
	}
	return rates, nil
}

// --- valuations ---

const valuationColumns = `id, property_id, valuation_date, valuation_cents, source, notes`

func scanValuation(row rowScanner) (domain.PropertyValuation, error) {
	var (
		v     domain.PropertyValuation
		date  string
		cents int64
		notes sql.NullString
	)
	if err := row.Scan(&v.ID, &v.PropertyID, &date, &cents, &v.Source, &notes); err != nil {
		return domain.PropertyValuation{}, err
	}
	d, err := mapping.FromDateString(date)
	if err != nil {
		return domain.PropertyValuation{}, err
	}
	v.ValuationDate = d
	v.Amount = mapping.FromCents(cents)
	v.Notes = mapping.FromNullString(notes)
	return v, nil
}

func (r *PropertyRepository) SaveValuation(ctx context.Context, valuation domain.PropertyValuation) (int64, error) {
	amount, err := mapping.ToCents(valuation.Amount)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, "failed to save property valuation", `
		INSERT INTO property_valuations (property_id, valuation_cents, valuation_date, source, notes)
		VALUES (?, ?, ?, ?, ?);`,
		valuation.PropertyID,
		amount,
		mapping.ToDateString(valuation.ValuationDate),
		valuation.Source,
		mapping.ToNullString(valuation.Notes),
	)
}

// LatestValuation breaks ties on the same date by the most recently recorded row.
func (r *PropertyRepository) LatestValuation(ctx context.Context, propertyID int64) (*domain.PropertyValuation, error) {
	v, err := scanValuation(r.q.QueryRowContext(ctx, `
		SELECT `+valuationColumns+` FROM property_valuations
		WHERE property_id = ?
		ORDER BY valuation_date DESC, id DESC
		LIMIT 1;`, propertyID))
	if err != nil {
		return nil, translateError(fmt.Sprintf("failed to find latest valuation of property %d", propertyID), err)
	}
	return &v, nil
}

func (r *PropertyRepository) ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+valuationColumns+` FROM property_valuations
		WHERE property_id = ?
		ORDER BY valuation_date DESC, id DESC;`, propertyID)
	if err != nil {
		return nil, translateError("failed to list property valuations", err)
	}
	defer rows.Close()

	valuations := []domain.PropertyValuation{}
	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, wrapScan("list property valuations", err)
		}
		valuations = append(valuations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate property valuations", err)
	}
	return valuations, nil
}

// --- transfers and snapshots ---

func (r *PropertyRepository) SaveTransfer(ctx context.Context, transfer domain.PropertyTransfer) (int64, error) {
	amount, err := mapping.ToCents(transfer.Amount)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, "failed to save property transfer", `
		INSERT INTO property_transfers (from_property_id, to_property_id, owner_id, amount_cents, journal_entry_id, transfer_date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?);`,
		transfer.FromPropertyID,
		transfer.ToPropertyID,
		transfer.OwnerID,
		amount,
		transfer.JournalEntryID,
		mapping.ToDateString(transfer.TransferDate),
		transfer.Description,
	)
}

func (r *PropertyRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PropertyID != nil {
		conds = append(conds, "(pt.from_property_id = ? OR pt.to_property_id = ?)")
		args = append(args, *filter.PropertyID, *filter.PropertyID)
	}
	if filter.OwnerID != nil {
		conds = append(conds, "pt.owner_id = ?")
		args = append(args, *filter.OwnerID)
	}

	query := `
		SELECT pt.id, pt.from_property_id, pt.to_property_id, pt.owner_id, pt.amount_cents,
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

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("failed to list property transfers", err)
	}
	defer rows.Close()

	transfers := []domain.PropertyTransfer{}
	for rows.Next() {
		var (
			t         domain.PropertyTransfer
			cents     int64
			date      string
			createdAt string
		)
		if err := rows.Scan(&t.ID, &t.FromPropertyID, &t.ToPropertyID, &t.OwnerID, &cents, &t.JournalEntryID,
			&date, &t.Description, &t.FromPropertyName, &t.ToPropertyName, &t.OwnerName, &createdAt); err != nil {
			return nil, wrapScan("list property transfers", err)
		}
		d, err := mapping.FromDateString(date)
		if err != nil {
			return nil, wrapScan("list property transfers", err)
		}
		t.Amount = mapping.FromCents(cents)
		t.TransferDate = d
		t.CreatedAt = mapping.FromTimestampString(createdAt)
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate property transfers", err)
	}
	return transfers, nil
}

func (r *PropertyRepository) SaveEquitySnapshot(ctx context.Context, snapshot domain.EquitySnapshot) (int64, error) {
	cents, err := toCents(snapshot.MarketValue, snapshot.MortgageBalance, snapshot.CapitalBalance, snapshot.EquityAmount)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, "failed to save equity snapshot", `
		INSERT INTO equity_snapshots (property_id, owner_id, snapshot_date, market_value_cents, mortgage_balance_cents,
		                              capital_balance_cents, ownership_pct, equity_amount_cents)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		snapshot.PropertyID,
		snapshot.OwnerID,
		mapping.ToDateString(snapshot.SnapshotDate),
		cents[0],
		cents[1],
		cents[2],
		toReal(snapshot.OwnershipPct),
		cents[3],
	)
}

// --- allocation rules ---

func (r *PropertyRepository) ListAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, property_id, owner_id, expense_type, allocation_pct
		FROM expense_allocation_rules
		WHERE property_id = ?
		ORDER BY expense_type, owner_id;`, propertyID)
	if err != nil {
		return nil, translateError("failed to list allocation rules", err)
	}
	defer rows.Close()

	rules := []domain.ExpenseAllocationRule{}
	for rows.Next() {
		var (
			rule domain.ExpenseAllocationRule
			pct  float64
		)
		if err := rows.Scan(&rule.ID, &rule.PropertyID, &rule.OwnerID, &rule.ExpenseType, &pct); err != nil {
			return nil, wrapScan("list allocation rules", err)
		}
		rule.AllocationPct = fromReal(pct)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("failed to iterate allocation rules", err)
	}
	return rules, nil
}

func (r *PropertyRepository) UpsertAllocationRule(ctx context.Context, rule domain.ExpenseAllocationRule) error {
	_, err := r.exec(ctx, "failed to save allocation rule", `
		INSERT INTO expense_allocation_rules (property_id, owner_id, expense_type, allocation_pct)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (property_id, owner_id, expense_type)
		DO UPDATE SET allocation_pct = excluded.allocation_pct;`,
		rule.PropertyID, rule.OwnerID, rule.ExpenseType, toReal(rule.AllocationPct))
	return err
}

func (r *PropertyRepository) DeleteAllocationRules(ctx context.Context, propertyID int64, expenseType string) error {
	_, err := r.exec(ctx, "failed to delete allocation rules",
		`DELETE FROM expense_allocation_rules WHERE property_id = ? AND expense_type = ?;`, propertyID, expenseType)
	return err
}
