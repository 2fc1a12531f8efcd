package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	bankID                 int64 = 100
	rentalIncomeID         int64 = 101
	rentalIncomeEquityID   int64 = 102
	propertyExpensesID     int64 = 103
	propertyExpenseEquitID int64 = 104
)

type AllocationServiceTestSuite struct {
	suite.Suite
	mocks   *mockRepos
	service portssvc.AllocationSvc
	ctx     context.Context
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}

func (suite *AllocationServiceTestSuite) SetupTest() {
	suite.mocks = newMockRepos()
	suite.service = services.NewAllocationService(suite.mocks.store, "")
	suite.ctx = context.Background()
}

func (suite *AllocationServiceTestSuite) TearDownTest() {
	suite.mocks.assertExpectations(suite.T())
}

func (suite *AllocationServiceTestSuite) expectPosting(rules []domain.ExpenseAllocationRule) {
	m := suite.mocks
	m.property.On("FindPropertyByID", mock.Anything, houseA).Return(&domain.Property{ID: houseA, Name: "House A"}, nil)
	m.property.On("ListOwnership", mock.Anything, houseA).Return(twoOwners(houseA), nil)
	m.property.On("ListAllocationRules", mock.Anything, houseA).Return(rules, nil)
	m.existingAccount(domain.BankAccountName, bankID, domain.Asset)
	m.knownAccounts()
	m.sequentialEntries(1)
}

func rule(ownerID int64, expenseType, pct string) domain.ExpenseAllocationRule {
	return domain.ExpenseAllocationRule{
		PropertyID:    houseA,
		OwnerID:       ownerID,
		ExpenseType:   expenseType,
		AllocationPct: decimal.RequireFromString(pct),
	}
}

func (suite *AllocationServiceTestSuite) TestRecordRentalIncome_FollowsRules() {
	suite.expectPosting([]domain.ExpenseAllocationRule{
		rule(aliceID, domain.AllExpenseTypes, "70"),
		rule(bobID, domain.AllExpenseTypes, "30"),
	})
	suite.mocks.existingAccount(domain.RentalIncomeAccountName, rentalIncomeID, domain.Income)
	suite.mocks.existingAccount(domain.RentalIncomeEquityAccountName, rentalIncomeEquityID, domain.Equity)

	result, err := suite.service.RecordRentalIncome(suite.ctx, houseA, dto.RentalIncomeRequest{
		Amount: decimal.NewFromInt(1000),
		Date:   "2024-08-01",
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.PrimaryEntryID)
	suite.Equal([]int64{2, 3}, result.AllocationEntryIDs)

	saved := suite.mocks.savedEntries()
	suite.Require().Len(saved, 3)
	suite.Equal("Rental income", saved[0].Header.Description)
	suite.Equal(map[int64]string{bankID: "1000.00", rentalIncomeID: "-1000.00"}, amountsOf(saved[0]))
	suite.Equal("Rental income allocation - 70%", saved[1].Header.Description)
	suite.Equal(map[int64]string{aliceCapital: "700.00", rentalIncomeEquityID: "-700.00"}, amountsOf(saved[1]))
	suite.Equal(map[int64]string{bobCapital: "300.00", rentalIncomeEquityID: "-300.00"}, amountsOf(saved[2]))
}

func (suite *AllocationServiceTestSuite) TestRecordPropertyExpense_SpecificTypeWins() {
	suite.expectPosting([]domain.ExpenseAllocationRule{
		rule(aliceID, domain.AllExpenseTypes, "50"),
		rule(bobID, domain.AllExpenseTypes, "50"),
		rule(aliceID, "insurance", "100"),
		rule(bobID, "insurance", "0"),
	})
	suite.mocks.existingAccount(domain.PropertyExpensesAccountName, propertyExpensesID, domain.Expense)
	suite.mocks.existingAccount(domain.PropertyExpenseEquityAccountName, propertyExpenseEquitID, domain.Equity)

	result, err := suite.service.RecordPropertyExpense(suite.ctx, houseA, dto.PropertyExpenseRequest{
		Amount:      decimal.RequireFromString("480.00"),
		Date:        "2024-08-02",
		Description: "Home insurance",
		ExpenseType: "Insurance",
	})
	suite.Require().NoError(err)
	// Bob's zero share is skipped.
	suite.Len(result.AllocationEntryIDs, 1)

	saved := suite.mocks.savedEntries()
	suite.Require().Len(saved, 2)
	suite.Equal(map[int64]string{bankID: "-480.00", propertyExpensesID: "480.00"}, amountsOf(saved[0]))
	suite.Equal("Property expense allocation - 100%", saved[1].Header.Description)
	suite.Equal(map[int64]string{aliceCapital: "-480.00", propertyExpenseEquitID: "480.00"}, amountsOf(saved[1]))
}

func (suite *AllocationServiceTestSuite) TestRecordRentalIncome_NoRulesSplitsEqually() {
	suite.expectPosting(nil)
	suite.mocks.existingAccount(domain.RentalIncomeAccountName, rentalIncomeID, domain.Income)
	suite.mocks.existingAccount(domain.RentalIncomeEquityAccountName, rentalIncomeEquityID, domain.Equity)

	_, err := suite.service.RecordRentalIncome(suite.ctx, houseA, dto.RentalIncomeRequest{
		Amount: decimal.RequireFromString("1200.50"),
		Date:   "2024-08-01",
	})
	suite.Require().NoError(err)

	saved := suite.mocks.savedEntries()
	suite.Require().Len(saved, 3)
	suite.Equal("Rental income allocation - 50%", saved[1].Header.Description)
	suite.Equal(map[int64]string{aliceCapital: "600.25", rentalIncomeEquityID: "-600.25"}, amountsOf(saved[1]))
}

func (suite *AllocationServiceTestSuite) TestRecordRentalIncome_CreatesMissingAccounts() {
	suite.expectPosting(nil)
	m := suite.mocks
	m.accounts.On("FindAccountByName", mock.Anything, domain.RentalIncomeAccountName).Return(nil, apperrors.ErrNotFound).Once()
	m.accounts.On("SaveAccount", mock.Anything, domain.Account{Name: domain.RentalIncomeAccountName, Type: domain.Income}).Return(rentalIncomeID, nil).Once()
	m.accounts.On("FindAccountByName", mock.Anything, domain.RentalIncomeEquityAccountName).Return(nil, apperrors.ErrNotFound).Once()
	m.accounts.On("SaveAccount", mock.Anything, domain.Account{Name: domain.RentalIncomeEquityAccountName, Type: domain.Equity}).Return(rentalIncomeEquityID, nil).Once()

	_, err := suite.service.RecordRentalIncome(suite.ctx, houseA, dto.RentalIncomeRequest{
		Amount: decimal.NewFromInt(10),
		Date:   "2024-08-01",
	})
	suite.Require().NoError(err)
}

func (suite *AllocationServiceTestSuite) TestRecordRentalIncome_NoOwners() {
	m := suite.mocks
	m.property.On("FindPropertyByID", mock.Anything, houseA).Return(&domain.Property{ID: houseA}, nil).Once()
	m.property.On("ListOwnership", mock.Anything, houseA).Return([]domain.PropertyOwnership{}, nil).Once()

	_, err := suite.service.RecordRentalIncome(suite.ctx, houseA, dto.RentalIncomeRequest{
		Amount: decimal.NewFromInt(10),
		Date:   "2024-08-01",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AllocationServiceTestSuite) TestRecordRentalIncome_RejectsNonPositive() {
	_, err := suite.service.RecordRentalIncome(suite.ctx, houseA, dto.RentalIncomeRequest{
		Amount: decimal.Zero,
		Date:   "2024-08-01",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AllocationServiceTestSuite) expectOwners() {
	suite.mocks.property.On("FindPropertyByID", mock.Anything, houseA).Return(&domain.Property{ID: houseA}, nil)
	suite.mocks.property.On("ListOwnership", mock.Anything, houseA).Return(twoOwners(houseA), nil)
}

func (suite *AllocationServiceTestSuite) TestSetAllocationRule_CapsTotal() {
	suite.expectOwners()
	suite.mocks.property.On("ListAllocationRules", mock.Anything, houseA).Return([]domain.ExpenseAllocationRule{
		rule(bobID, domain.AllExpenseTypes, "40"),
	}, nil).Once()

	_, err := suite.service.SetAllocationRule(suite.ctx, houseA, dto.AllocationRuleRequest{
		OwnerID:       aliceID,
		AllocationPct: decimal.NewFromInt(70),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mocks.property.AssertNotCalled(suite.T(), "UpsertAllocationRule", mock.Anything, mock.Anything)
}

func (suite *AllocationServiceTestSuite) TestSetAllocationRule_Upserts() {
	suite.expectOwners()
	stored := rule(aliceID, domain.AllExpenseTypes, "60")
	stored.ID = 8
	suite.mocks.property.On("ListAllocationRules", mock.Anything, houseA).Return([]domain.ExpenseAllocationRule{
		rule(bobID, domain.AllExpenseTypes, "40"),
	}, nil).Once()
	suite.mocks.property.On("UpsertAllocationRule", mock.Anything, rule(aliceID, domain.AllExpenseTypes, "60")).Return(nil).Once()
	suite.mocks.property.On("ListAllocationRules", mock.Anything, houseA).Return([]domain.ExpenseAllocationRule{
		rule(bobID, domain.AllExpenseTypes, "40"), stored,
	}, nil).Once()

	saved, err := suite.service.SetAllocationRule(suite.ctx, houseA, dto.AllocationRuleRequest{
		OwnerID:       aliceID,
		AllocationPct: decimal.NewFromInt(60),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(8), saved.ID)
}

func (suite *AllocationServiceTestSuite) TestSetAllocationRule_RejectsOutOfRange() {
	_, err := suite.service.SetAllocationRule(suite.ctx, houseA, dto.AllocationRuleRequest{
		OwnerID:       aliceID,
		AllocationPct: decimal.NewFromInt(101),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AllocationServiceTestSuite) TestSetAllocationRules_MustTotalHundred() {
	_, err := suite.service.SetAllocationRules(suite.ctx, houseA, dto.AllocationSplitRequest{
		Allocations: []dto.OwnerAllocation{
			{OwnerID: aliceID, AllocationPct: decimal.NewFromInt(60)},
			{OwnerID: bobID, AllocationPct: decimal.NewFromInt(30)},
		},
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AllocationServiceTestSuite) TestSetAllocationRules_ReplacesSplit() {
	suite.expectOwners()
	m := suite.mocks
	m.property.On("DeleteAllocationRules", mock.Anything, houseA, "maintenance").Return(nil).Once()
	m.property.On("UpsertAllocationRule", mock.Anything, mock.AnythingOfType("domain.ExpenseAllocationRule")).Return(nil).Twice()
	m.property.On("ListAllocationRules", mock.Anything, houseA).Return([]domain.ExpenseAllocationRule{
		rule(aliceID, "maintenance", "25"),
		rule(bobID, "maintenance", "75"),
		rule(aliceID, domain.AllExpenseTypes, "50"),
	}, nil).Once()

	rules, err := suite.service.SetAllocationRules(suite.ctx, houseA, dto.AllocationSplitRequest{
		ExpenseType: " Maintenance ",
		Allocations: []dto.OwnerAllocation{
			{OwnerID: aliceID, AllocationPct: decimal.NewFromInt(25)},
			{OwnerID: bobID, AllocationPct: decimal.NewFromInt(75)},
		},
	})
	suite.Require().NoError(err)
	suite.Len(rules, 2)
}
