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

type PropertyServiceTestSuite struct {
	suite.Suite
	mocks   *mockRepos
	service portssvc.PropertySvcFacade
	ctx     context.Context
	house   *domain.Property
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.mocks = newMockRepos()
	suite.service = services.NewPropertyService(suite.mocks.store)
	suite.ctx = context.Background()
	suite.house = &domain.Property{ID: houseA, Name: "House A", PropertyType: domain.DefaultPropertyType}
}

func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.mocks.assertExpectations(suite.T())
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_Defaults() {
	purchaseDate := "2019-06-01"
	price := decimal.NewFromInt(250000)
	suite.mocks.property.On("SaveProperty", mock.Anything, mock.MatchedBy(func(p domain.Property) bool {
		return p.Name == "House A" && p.PropertyType == domain.DefaultPropertyType &&
			p.PurchaseDate != nil && domain.FormatDate(*p.PurchaseDate) == purchaseDate
	})).Return(houseA, nil).Once()
	suite.mocks.property.On("FindPropertyByID", mock.Anything, houseA).Return(suite.house, nil).Once()

	property, err := suite.service.CreateProperty(suite.ctx, dto.CreatePropertyRequest{
		Name:          " House A ",
		PurchaseDate:  &purchaseDate,
		PurchasePrice: &price,
	})
	suite.Require().NoError(err)
	suite.Equal(houseA, property.ID)
}

func (suite *PropertyServiceTestSuite) TestCreateProperty_NegativePrice() {
	price := decimal.NewFromInt(-1)
	_, err := suite.service.CreateProperty(suite.ctx, dto.CreatePropertyRequest{Name: "X", PurchasePrice: &price})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PropertyServiceTestSuite) TestCreateOwner_Idempotent() {
	suite.mocks.property.On("SaveOwner", mock.Anything, domain.Owner{Name: "Alice"}).Return(aliceID, nil).Twice()
	suite.mocks.property.On("FindOwnerByID", mock.Anything, aliceID).Return(&domain.Owner{ID: aliceID, Name: "Alice"}, nil).Twice()

	first, err := suite.service.CreateOwner(suite.ctx, dto.CreateOwnerRequest{Name: "Alice"})
	suite.Require().NoError(err)
	second, err := suite.service.CreateOwner(suite.ctx, dto.CreateOwnerRequest{Name: "Alice "})
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
}

func (suite *PropertyServiceTestSuite) TestAddOwnership_CreatesCapitalAccount() {
	m := suite.mocks
	m.property.On("FindPropertyByID", mock.Anything, houseA).Return(suite.house, nil).Once()
	m.property.On("FindOwnerByID", mock.Anything, aliceID).Return(&domain.Owner{ID: aliceID, Name: "Alice"}, nil).Once()
	m.property.On("ListOwnership", mock.Anything, houseA).Return([]domain.PropertyOwnership{}, nil).Once()
	name := services.CapitalAccountName("Alice", "House A")
	m.accounts.On("FindAccountByName", mock.Anything, name).Return(nil, apperrors.ErrNotFound).Once()
	m.accounts.On("SaveAccount", mock.Anything, domain.Account{Name: name, Type: domain.Equity}).Return(aliceCapital, nil).Once()
	m.property.On("SaveOwnership", mock.Anything, domain.PropertyOwnership{
		PropertyID: houseA, OwnerID: aliceID, OwnerName: "Alice", CapitalAccountID: aliceCapital,
	}).Return(int64(1), nil).Once()

	ownership, err := suite.service.AddOwnership(suite.ctx, houseA, dto.AddOwnershipRequest{OwnerID: aliceID})
	suite.Require().NoError(err)
	suite.Equal(aliceCapital, ownership.CapitalAccountID)
	suite.Equal("Capital - Alice - House A", name)
}

func (suite *PropertyServiceTestSuite) TestAddOwnership_Duplicate() {
	m := suite.mocks
	m.property.On("FindPropertyByID", mock.Anything, houseA).Return(suite.house, nil).Once()
	m.property.On("FindOwnerByID", mock.Anything, aliceID).Return(&domain.Owner{ID: aliceID, Name: "Alice"}, nil).Once()
	m.property.On("ListOwnership", mock.Anything, houseA).Return(twoOwners(houseA), nil).Once()

	_, err := suite.service.AddOwnership(suite.ctx, houseA, dto.AddOwnershipRequest{OwnerID: aliceID})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PropertyServiceTestSuite) TestAddValuation() {
	m := suite.mocks
	m.property.On("FindPropertyByID", mock.Anything, houseA).Return(suite.house, nil).Once()
	m.property.On("SaveValuation", mock.Anything, mock.MatchedBy(func(v domain.PropertyValuation) bool {
		return v.Source == domain.DefaultValuationSource && v.Amount.Equal(decimal.NewFromInt(250000))
	})).Return(int64(4), nil).Once()

	valuation, err := suite.service.AddValuation(suite.ctx, houseA, dto.AddValuationRequest{
		ValuationDate: "2024-01-01",
		Amount:        decimal.NewFromInt(250000),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(4), valuation.ID)
}
