package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetOrCreateAccount(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, name, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryDetail), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, filter domain.EntryFilter, page domain.Page) ([]domain.EntryListItem, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryListItem), args.Error(1)
}

func (m *MockLedgerService) SearchEntries(ctx context.Context, query string, limit int) ([]domain.EntryListItem, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryListItem), args.Error(1)
}

func (m *MockLedgerService) PostEntry(ctx context.Context, header domain.JournalEntry, lines []domain.BookEntry) (int64, error) {
	args := m.Called(ctx, header, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) UpdateCategory(ctx context.Context, entryID int64, categoryID *int64) error {
	args := m.Called(ctx, entryID, categoryID)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) TransferEquity(ctx context.Context, req dto.TransferEquityRequest) (*domain.PropertyTransfer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyTransfer), args.Error(1)
}

func (m *MockTransferService) GetTransfers(ctx context.Context, filter domain.TransferFilter) ([]domain.PropertyTransfer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyTransfer), args.Error(1)
}

var _ portssvc.TransferSvc = (*MockTransferService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Run(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) (*domain.ImportResult, error) {
	args := m.Called(ctx, meta, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func (m *MockImportService) Preview(ctx context.Context, meta dto.ImportMeta, txns []domain.RawTransaction) ([]domain.RawTransaction, error) {
	args := m.Called(ctx, meta, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawTransaction), args.Error(1)
}

func (m *MockImportService) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportBatch), args.Error(1)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Mock EquityService ---
type MockEquityService struct {
	mock.Mock
}

func (m *MockEquityService) Calculate(ctx context.Context, propertyID int64) ([]domain.OwnerEquity, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerEquity), args.Error(1)
}

func (m *MockEquityService) CalculateAll(ctx context.Context) (map[int64][]domain.OwnerEquity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.OwnerEquity), args.Error(1)
}

func (m *MockEquityService) OwnerTotalEquity(ctx context.Context, ownerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEquityService) PropertySummary(ctx context.Context, propertyID int64) (*domain.PropertySummary, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertySummary), args.Error(1)
}

func (m *MockEquityService) SnapshotEquity(ctx context.Context, propertyID int64, date time.Time) ([]domain.EquitySnapshot, error) {
	args := m.Called(ctx, propertyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquitySnapshot), args.Error(1)
}

var _ portssvc.EquitySvc = (*MockEquityService)(nil)

// --- Mock AllocationService ---
type MockAllocationService struct {
	mock.Mock
}

func (m *MockAllocationService) RecordRentalIncome(ctx context.Context, propertyID int64, req dto.RentalIncomeRequest) (*domain.AllocationResult, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationResult), args.Error(1)
}

func (m *MockAllocationService) RecordPropertyExpense(ctx context.Context, propertyID int64, req dto.PropertyExpenseRequest) (*domain.AllocationResult, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocationResult), args.Error(1)
}

func (m *MockAllocationService) SetAllocationRule(ctx context.Context, propertyID int64, req dto.AllocationRuleRequest) (*domain.ExpenseAllocationRule, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseAllocationRule), args.Error(1)
}

func (m *MockAllocationService) SetAllocationRules(ctx context.Context, propertyID int64, req dto.AllocationSplitRequest) ([]domain.ExpenseAllocationRule, error) {
	args := m.Called(ctx, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAllocationRule), args.Error(1)
}

func (m *MockAllocationService) GetAllocationRules(ctx context.Context, propertyID int64) ([]domain.ExpenseAllocationRule, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseAllocationRule), args.Error(1)
}

var _ portssvc.AllocationSvc = (*MockAllocationService)(nil)
