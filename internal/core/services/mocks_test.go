package services_test

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock Store ---

// MockStore runs every unit of work against the same set of mock repositories.
type MockStore struct {
	mock.Mock
	repos portsrepo.RepositoryProvider
}

var _ portsrepo.Store = (*MockStore)(nil)

func (m *MockStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return fn(ctx, m.repos)
}

func (m *MockStore) Repositories() portsrepo.RepositoryProvider {
	return m.repos
}

func (m *MockStore) Close() error {
	return nil
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, []int64) map[int64]domain.Account); ok {
		return fn(ctx, accountIDs), args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) LockAccountsForUpdate(ctx context.Context, accountIDs []int64) error {
	args := m.Called(ctx, accountIDs)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.BookEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryListItem), args.Error(1)
}

func (m *MockJournalRepository) SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryListItem), args.Error(1)
}

func (m *MockJournalRepository) SumAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error) {
	args := m.Called(ctx, header, lines)
	if fn, ok := args.Get(0).(func() int64); ok {
		return fn(), args.Error(1)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) UpdateEntryCategory(ctx context.Context, entryID int64, categoryID *int64) error {
	args := m.Called(ctx, entryID, categoryID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListRules(ctx context.Context) ([]domain.CategorizationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorizationRule), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveRule(ctx context.Context, rule domain.CategorizationRule) (int64, error) {
	args := m.Called(ctx, rule)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ImportRepository ---
type MockImportRepository struct {
	mock.Mock
}

var _ portsrepo.ImportRepositoryFacade = (*MockImportRepository)(nil)

func (m *MockImportRepository) SaveBatch(ctx context.Context, batch domain.ImportBatch) (int64, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) UpdateBatchCounts(ctx context.Context, batchID int64, imported, duplicates int) error {
	args := m.Called(ctx, batchID, imported, duplicates)
	return args.Error(0)
}

func (m *MockImportRepository) FindBatchByID(ctx context.Context, batchID int64) (*domain.ImportBatch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportBatch), args.Error(1)
}

func (m *MockImportRepository) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportBatch), args.Error(1)
}

func (m *MockImportRepository) FingerprintExists(ctx context.Context, fingerprint string, accountID int64) (bool, error) {
	args := m.Called(ctx, fingerprint, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockImportRepository) SaveFingerprint(ctx context.Context, fp domain.TransactionFingerprint) (int64, error) {
	args := m.Called(ctx, fp)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PropertyRepository ---
type MockPropertyRepository struct {
	mock.Mock
}

var _ portsrepo.PropertyRepositoryFacade = (*MockPropertyRepository)(nil)

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindOwnerByID(ctx context.Context, ownerID int64) (*domain.Owner, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockPropertyRepository) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Owner), args.Error(1)
}

func (m *MockPropertyRepository) ListOwnership(ctx context.Context, propertyID int64) ([]domain.PropertyOwnership, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyOwnership), args.Error(1)
}

func (m *MockPropertyRepository) ListOwnershipByOwner(ctx context.Context, ownerID int64) ([]domain.PropertyOwnership, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyOwnership), args.Error(1)
}

func (m *MockPropertyRepository) FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mortgage), args.Error(1)
}

func (m *MockPropertyRepository) ListMortgages(ctx context.Context, propertyID int64) ([]domain.Mortgage, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mortgage), args.Error(1)
}

func (m *MockPropertyRepository) ListMortgageRates(ctx context.Context, mortgageID int64) ([]domain.MortgageRate, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MortgageRate), args.Error(1)
}

func (m *MockPropertyRepository) LatestValuation(ctx context.Context, propertyID int64) (*domain.PropertyValuation, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyValuation), args.Error(1)
}

func (m *MockPropertyRepository) ListValuations(ctx context.Context, propertyID int64) ([]domain.PropertyValuation, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyValuation), args.Error(1)
}

func (m *MockPropertyRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTransfer), args.Error(1)
}

func (m *MockPropertyRepository) ListAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAllocationRule), args.Error(1)
}

func (m *MockPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) (int64, error) {
	args := m.Called(ctx, property)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveOwner(ctx context.Context, owner domain.Owner) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveOwnership(ctx context.Context, ownership domain.PropertyOwnership) (int64, error) {
	args := m.Called(ctx, ownership)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveMortgage(ctx context.Context, mortgage domain.Mortgage) (int64, error) {
	args := m.Called(ctx, mortgage)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveMortgageRate(ctx context.Context, rate domain.MortgageRate) (int64, error) {
	args := m.Called(ctx, rate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveValuation(ctx context.Context, valuation domain.PropertyValuation) (int64, error) {
	args := m.Called(ctx, valuation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveTransfer(ctx context.Context, transfer domain.PropertyTransfer) (int64, error) {
	args := m.Called(ctx, transfer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) SaveEquitySnapshot(ctx context.Context, snapshot domain.EquitySnapshot) (int64, error) {
	args := m.Called(ctx, snapshot)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) UpsertAllocationRule(ctx context.Context, rule domain.ExpenseAllocationRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPropertyRepository) DeleteAllocationRules(ctx context.Context, propertyID int64, expenseType string) error {
	args := m.Called(ctx, propertyID, expenseType)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockReportingRepository) MonthlySpending(ctx context.Context, filter domain.DateRange) ([]domain.MonthlySpending, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySpending), args.Error(1)
}

func (m *MockReportingRepository) CategoryBalances(ctx context.Context) ([]domain.CategoryBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryBalance), args.Error(1)
}

// mockRepos bundles one of each mock repository behind a MockStore.
type mockRepos struct {
	store     *MockStore
	accounts  *MockAccountRepository
	journal   *MockJournalRepository
	category  *MockCategoryRepository
	imports   *MockImportRepository
	property  *MockPropertyRepository
	reporting *MockReportingRepository
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		accounts:  new(MockAccountRepository),
		journal:   new(MockJournalRepository),
		category:  new(MockCategoryRepository),
		imports:   new(MockImportRepository),
		property:  new(MockPropertyRepository),
		reporting: new(MockReportingRepository),
	}
	m.store = &MockStore{repos: portsrepo.RepositoryProvider{
		AccountRepo:   m.accounts,
		CategoryRepo:  m.category,
		JournalRepo:   m.journal,
		ImportRepo:    m.imports,
		PropertyRepo:  m.property,
		ReportingRepo: m.reporting,
	}}
	return m
}

func (m *mockRepos) assertExpectations(t mock.TestingT) {
	m.accounts.AssertExpectations(t)
	m.journal.AssertExpectations(t)
	m.category.AssertExpectations(t)
	m.imports.AssertExpectations(t)
	m.property.AssertExpectations(t)
	m.reporting.AssertExpectations(t)
}

// knownAccounts makes FindAccountsByIDs report every requested id as present.
func (m *mockRepos) knownAccounts() {
	m.accounts.On("FindAccountsByIDs", mock.Anything, mock.Anything).
		Return(func(_ context.Context, ids []int64) map[int64]domain.Account {
			found := make(map[int64]domain.Account, len(ids))
			for _, id := range ids {
				found[id] = domain.Account{ID: id}
			}
			return found
		}, nil)
}

// sequentialEntries makes SaveEntry hand out ids start, start+1, ...
func (m *mockRepos) sequentialEntries(start int64) {
	next := start
	m.journal.On("SaveEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(func() int64 {
			id := next
			next++
			return id
		}, nil)
}

// savedEntries returns every entry passed to SaveEntry, in call order.
func (m *mockRepos) savedEntries() []domain.ProposedEntry {
	var entries []domain.ProposedEntry
	for _, call := range m.journal.Calls {
		if call.Method != "SaveEntry" {
			continue
		}
		entries = append(entries, domain.ProposedEntry{
			Header: call.Arguments.Get(1).(domain.JournalEntry),
			Lines:  call.Arguments.Get(2).([]domain.BookEntry),
		})
	}
	return entries
}

// existingAccount makes FindAccountByName return an account with this id.
func (m *mockRepos) existingAccount(name string, id int64, accountType domain.AccountType) {
	m.accounts.On("FindAccountByName", mock.Anything, name).
		Return(&domain.Account{ID: id, Name: name, Type: accountType}, nil)
}

// amountsOf maps account id to the summed line amount of entry.
func amountsOf(entry domain.ProposedEntry) map[int64]string {
	sums := make(map[int64]decimal.Decimal)
	for _, l := range entry.Lines {
		sums[l.AccountID] = sums[l.AccountID].Add(l.Amount)
	}
	out := make(map[int64]string, len(sums))
	for id, v := range sums {
		out[id] = v.StringFixed(2)
	}
	return out
}
