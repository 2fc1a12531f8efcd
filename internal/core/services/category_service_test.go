package services_test

import (
	"context"
	"testing"
	"time"

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
	groceriesID int64 = 1
	transportID int64 = 2
	utilitiesID int64 = 3
	salaryID    int64 = 4
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mocks   *mockRepos
	service portssvc.CategorySvcFacade
	ctx     context.Context
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mocks = newMockRepos()
	suite.service = services.NewCategoryService(suite.mocks.store)
	suite.ctx = context.Background()
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.mocks.assertExpectations(suite.T())
}

func raw(description string) domain.RawTransaction {
	return domain.RawTransaction{
		Date:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      decimal.NewFromInt(-10),
	}
}

func (suite *CategoryServiceTestSuite) TestCategorize() {
	// Already in priority order, as the repository returns them.
	suite.mocks.category.On("ListRules", mock.Anything).Return([]domain.CategorizationRule{
		{ID: 5, Pattern: "albert heijn", CategoryID: groceriesID, MatchType: domain.MatchContains, Priority: 10},
		{ID: 1, Pattern: "[unclosed", CategoryID: utilitiesID, MatchType: domain.MatchRegex, Priority: 5},
		{ID: 2, Pattern: "NS ", CategoryID: transportID, MatchType: domain.MatchStartsWith},
		{ID: 3, Pattern: "vattenfall", CategoryID: utilitiesID, MatchType: domain.MatchExact},
		{ID: 4, Pattern: `^salary\s+\d{4}`, CategoryID: salaryID, MatchType: domain.MatchRegex},
		{ID: 6, Pattern: "heijn", CategoryID: transportID, MatchType: domain.MatchContains},
	}, nil).Once()

	dup := raw("Albert Heijn 1234")
	dup.IsDuplicate = true
	txns := []domain.RawTransaction{
		raw("ALBERT HEIJN 1234 AMSTERDAM"),
		raw("ns groningen"),
		raw("Vattenfall"),
		raw("Vattenfall NL"),
		raw("SALARY 2024 JAN"),
		raw("Coffee"),
		dup,
	}

	out, err := suite.service.Categorize(suite.ctx, txns)
	suite.Require().NoError(err)
	suite.Require().Len(out, len(txns))

	want := []*int64{&[]int64{groceriesID}[0], &[]int64{transportID}[0], &[]int64{utilitiesID}[0], nil, &[]int64{salaryID}[0], nil, nil}
	for i, w := range want {
		if w == nil {
			suite.Nil(out[i].SuggestedCategoryID, txns[i].Description)
			continue
		}
		suite.Require().NotNil(out[i].SuggestedCategoryID, txns[i].Description)
		suite.Equal(*w, *out[i].SuggestedCategoryID, txns[i].Description)
	}
}

func (suite *CategoryServiceTestSuite) TestAddRule_Defaults() {
	suite.mocks.category.On("FindCategoryByID", mock.Anything, groceriesID).Return(&domain.Category{ID: groceriesID}, nil).Once()
	suite.mocks.category.On("SaveRule", mock.Anything, domain.CategorizationRule{
		Pattern:    "jumbo",
		CategoryID: groceriesID,
		MatchType:  domain.MatchContains,
		Source:     domain.RuleSourceUser,
	}).Return(int64(9), nil).Once()

	rule, err := suite.service.AddRule(suite.ctx, dto.AddRuleRequest{Pattern: " jumbo ", CategoryID: groceriesID})
	suite.Require().NoError(err)
	suite.Equal(int64(9), rule.ID)
}

func (suite *CategoryServiceTestSuite) TestAddRule_InvalidRegex() {
	_, err := suite.service.AddRule(suite.ctx, dto.AddRuleRequest{
		Pattern:    "(",
		CategoryID: groceriesID,
		MatchType:  domain.MatchRegex,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestAddRule_UnknownCategory() {
	suite.mocks.category.On("FindCategoryByID", mock.Anything, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddRule(suite.ctx, dto.AddRuleRequest{Pattern: "x", CategoryID: 77})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestLearnFromCorrection() {
	entryID := int64(15)
	categoryID := groceriesID
	suite.mocks.category.On("FindCategoryByID", mock.Anything, groceriesID).Return(&domain.Category{ID: groceriesID}, nil).Once()
	suite.mocks.category.On("SaveRule", mock.Anything, domain.CategorizationRule{
		Pattern:    "lidl store 42",
		CategoryID: groceriesID,
		MatchType:  domain.MatchContains,
		Priority:   domain.LearnedRulePriority,
		Source:     domain.RuleSourceUser,
	}).Return(int64(3), nil).Once()
	suite.mocks.journal.On("FindEntryByID", mock.Anything, entryID).Return(&domain.JournalEntry{ID: entryID}, nil).Once()
	suite.mocks.journal.On("UpdateEntryCategory", mock.Anything, entryID, &categoryID).Return(nil).Once()

	rule, err := suite.service.LearnFromCorrection(suite.ctx, dto.LearnCategoryRequest{
		Description: "LIDL Store 42",
		CategoryID:  groceriesID,
		EntryID:     &entryID,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.LearnedRulePriority, rule.Priority)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory() {
	suite.mocks.category.On("SaveCategory", mock.Anything, domain.Category{Name: "Pets"}).Return(int64(12), nil).Once()

	category, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Pets"})
	suite.Require().NoError(err)
	suite.Equal(int64(12), category.ID)

	_, err = suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "  "})
	suite.ErrorIs(err, apperrors.ErrValidation)
}
