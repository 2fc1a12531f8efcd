package pgsql_test

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/household_ledger/migrations"
	"github.com/SscSPs/household_ledger/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PGSQL_TEST_URL points at a disposable database. Each test runs in its own schema.
const testURLEnv = "PGSQL_TEST_URL"

type PgStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	admin  *pgxpool.Pool
	schema string
	store  *pgsql.Store
	svc    *portssvc.ServiceContainer
}

func TestPgStoreTestSuite(t *testing.T) {
	if os.Getenv(testURLEnv) == "" {
		t.Skipf("%s not set", testURLEnv)
	}
	suite.Run(t, new(PgStoreTestSuite))
}

func withSearchPath(rawURL, schema string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (suite *PgStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	baseURL := os.Getenv(testURLEnv)

	admin, err := database.NewPgxPool(suite.ctx, baseURL)
	suite.Require().NoError(err)
	suite.admin = admin

	suite.schema = "ledger_test_" + uuid.NewString()[:8]
	_, err = admin.Exec(suite.ctx, fmt.Sprintf(`CREATE SCHEMA %q`, suite.schema))
	suite.Require().NoError(err)

	scopedURL, err := withSearchPath(baseURL, suite.schema)
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunPostgresMigrations(scopedURL, migrations.Postgres, migrations.PostgresDir))

	pool, err := database.NewPgxPool(suite.ctx, scopedURL)
	suite.Require().NoError(err)
	suite.store = pgsql.NewStore(pool, 2*time.Second)
	suite.svc = services.NewServiceContainer(suite.store)
}

func (suite *PgStoreTestSuite) TearDownTest() {
	suite.NoError(suite.store.Close())
	_, err := suite.admin.Exec(suite.ctx, fmt.Sprintf(`DROP SCHEMA %q CASCADE`, suite.schema))
	suite.NoError(err)
	database.ClosePgxPool(suite.admin)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *PgStoreTestSuite) account(name string, accountType domain.AccountType) int64 {
	acc, err := suite.svc.Account.GetOrCreateAccount(suite.ctx, name, accountType)
	suite.Require().NoError(err)
	return acc.ID
}

func (suite *PgStoreTestSuite) balance(accountID int64) string {
	b, err := suite.svc.Ledger.GetBalance(suite.ctx, accountID)
	suite.Require().NoError(err)
	return b.StringFixed(2)
}

func (suite *PgStoreTestSuite) TestPostEntry_SummaryUsesFixedPlaces() {
	bank := suite.account("Bank", domain.Asset)
	groceries := suite.account("Groceries", domain.Expense)

	_, err := suite.svc.Ledger.PostEntry(suite.ctx, domain.JournalEntry{
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Description: "Albert Heijn",
	}, []domain.BookEntry{domain.Line(bank, amount("-42")), domain.Line(groceries, amount("42"))})
	suite.Require().NoError(err)

	items, err := suite.svc.Ledger.ListEntries(suite.ctx, domain.EntryFilter{}, domain.Page{})
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Bank:-42.00|Groceries:42.00", items[0].EntriesSummary)
	suite.Equal("42.00", suite.balance(groceries))

	found, err := suite.svc.Ledger.SearchEntries(suite.ctx, "heijn", 0)
	suite.Require().NoError(err)
	suite.Len(found, 1)
}

func (suite *PgStoreTestSuite) TestDeferredTriggerRejectsUnbalancedEntry() {
	bank := suite.account("Bank", domain.Asset)
	cash := suite.account("Cash", domain.Asset)

	err := suite.store.WithinTx(suite.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		_, err := repos.JournalRepo.SaveEntry(ctx,
			domain.JournalEntry{Date: time.Now(), Description: "bypass"},
			[]domain.BookEntry{domain.Line(bank, amount("10")), domain.Line(cash, amount("-9.99"))},
		)
		return err
	})
	suite.ErrorIs(err, apperrors.ErrIntegrityConflict)
	suite.Equal("0.00", suite.balance(bank))
}

func (suite *PgStoreTestSuite) TestNumericOverflowIsValidationError() {
	bank := suite.account("Bank", domain.Asset)
	cash := suite.account("Cash", domain.Asset)

	err := suite.store.WithinTx(suite.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		_, err := repos.JournalRepo.SaveEntry(ctx,
			domain.JournalEntry{Date: time.Now(), Description: "bypass"},
			[]domain.BookEntry{domain.Line(bank, amount("100000000000000000")), domain.Line(cash, amount("-100000000000000000"))},
		)
		return err
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("0.00", suite.balance(bank))
}

func (suite *PgStoreTestSuite) TestOwnerIsIdempotentByName() {
	first, err := suite.svc.Property.CreateOwner(suite.ctx, dto.CreateOwnerRequest{Name: "Alice"})
	suite.Require().NoError(err)
	second, err := suite.svc.Property.CreateOwner(suite.ctx, dto.CreateOwnerRequest{Name: "Alice"})
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
}

func (suite *PgStoreTestSuite) TestEquity_AliceAndBob() {
	p, err := suite.svc.Property.CreateProperty(suite.ctx, dto.CreatePropertyRequest{Name: "Main Street"})
	suite.Require().NoError(err)

	opening := suite.account("Opening Balances", domain.Equity)
	for _, c := range []struct{ name, amt string }{{"Alice", "60000"}, {"Bob", "40000"}} {
		owner, err := suite.svc.Property.CreateOwner(suite.ctx, dto.CreateOwnerRequest{Name: c.name})
		suite.Require().NoError(err)
		link, err := suite.svc.Property.AddOwnership(suite.ctx, p.ID, dto.AddOwnershipRequest{OwnerID: owner.ID})
		suite.Require().NoError(err)
		_, err = suite.svc.Ledger.PostEntry(suite.ctx, domain.JournalEntry{Date: time.Now(), Description: "Contribution"},
			[]domain.BookEntry{domain.Line(link.CapitalAccountID, amount(c.amt)), domain.Line(opening, amount(c.amt).Neg())})
		suite.Require().NoError(err)
	}

	_, err = suite.svc.Property.AddValuation(suite.ctx, p.ID, dto.AddValuationRequest{
		ValuationDate: "2024-01-01",
		Amount:        amount("550000"),
	})
	suite.Require().NoError(err)
	m, err := suite.svc.Mortgage.AddMortgage(suite.ctx, p.ID, dto.AddMortgageRequest{
		Lender:         "ING",
		OriginalAmount: amount("400000"),
		StartDate:      "2024-01-01",
	})
	suite.Require().NoError(err)
	bank := suite.account(domain.BankAccountName, domain.Asset)
	_, err = suite.svc.Ledger.PostEntry(suite.ctx, domain.JournalEntry{Date: time.Now(), Description: "Drawdown"},
		[]domain.BookEntry{domain.Line(bank, amount("400000")), domain.Line(m.LiabilityAccountID, amount("-400000"))})
	suite.Require().NoError(err)

	summary, err := suite.svc.Equity.PropertySummary(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Equal("150000.00", summary.NetEquity.StringFixed(2))
	suite.Require().Len(summary.Owners, 2)
	suite.Equal("Alice", summary.Owners[0].OwnerName)
	suite.Equal("90000.00", summary.Owners[0].EquityAmount.StringFixed(2))
}
