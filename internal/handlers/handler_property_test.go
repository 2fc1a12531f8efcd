package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestPropertyEquity() {
	suite.equityService.On("Calculate", mock.Anything, int64(3)).Return([]domain.OwnerEquity{
		{PropertyID: 3, OwnerID: 1, OwnerName: "Alice", OwnershipPct: decimal.NewFromInt(60), EquityAmount: decimal.NewFromInt(90000)},
		{PropertyID: 3, OwnerID: 2, OwnerName: "Bob", OwnershipPct: decimal.NewFromInt(40), EquityAmount: decimal.NewFromInt(60000)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/properties/3/equity", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var got []domain.OwnerEquity
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Equal("Alice", got[0].OwnerName)
	suite.True(got[0].EquityAmount.Equal(decimal.NewFromInt(90000)))
	suite.True(got[1].OwnershipPct.Equal(decimal.NewFromInt(40)))
}

func (suite *HandlerTestSuite) TestPropertyEquity_UnknownProperty() {
	suite.equityService.On("Calculate", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/properties/99/equity", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestOwnerTotalEquity() {
	suite.equityService.On("OwnerTotalEquity", mock.Anything, int64(1)).Return(decimal.RequireFromString("1234.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/owners/1/equity", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var got handlers.OwnerEquityTotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(1), got.OwnerID)
	suite.True(got.TotalEquity.Equal(decimal.RequireFromString("1234.5")))
}

func (suite *HandlerTestSuite) TestSnapshotEquity() {
	suite.Run("explicit date", func() {
		want := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		suite.equityService.On("SnapshotEquity", mock.Anything, int64(3), mock.MatchedBy(func(d time.Time) bool {
			return d.Equal(want)
		})).Return([]domain.EquitySnapshot{{PropertyID: 3, OwnerID: 1, SnapshotDate: want}}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/properties/3/equity/snapshots", dto.SnapshotEquityRequest{Date: "2024-06-30"})

		suite.Equal(http.StatusCreated, w.Code)
	})

	suite.Run("no body uses today", func() {
		suite.equityService.On("SnapshotEquity", mock.Anything, int64(4), mock.AnythingOfType("time.Time")).
			Return([]domain.EquitySnapshot{}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/properties/4/equity/snapshots", nil)

		suite.Equal(http.StatusCreated, w.Code)
	})

	suite.equityService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRentalIncome() {
	suite.allocService.On("RecordRentalIncome", mock.Anything, int64(3), mock.MatchedBy(func(req dto.RentalIncomeRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(1000)) && req.Date == "2024-05-01"
	})).Return(&domain.AllocationResult{PrimaryEntryID: 10, AllocationEntryIDs: []int64{11, 12}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/properties/3/rental-income", map[string]any{
		"amount": "1000.00", "date": "2024-05-01",
	})

	suite.Require().Equal(http.StatusCreated, w.Code)
	var got domain.AllocationResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(10), got.PrimaryEntryID)
	suite.Equal([]int64{11, 12}, got.AllocationEntryIDs)
}

func (suite *HandlerTestSuite) TestPropertyExpense_NoOwners() {
	suite.allocService.On("RecordPropertyExpense", mock.Anything, int64(3), mock.AnythingOfType("dto.PropertyExpenseRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/properties/3/expenses", map[string]any{
		"amount": "200", "date": "2024-05-01", "expenseType": "repairs",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAllocationSplit() {
	suite.Run("empty split is rejected before the service", func() {
		w := suite.do(http.MethodPut, "/api/v1/properties/3/allocation-rules", map[string]any{
			"expenseType": "all", "allocations": []any{},
		})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.Run("split that does not total 100", func() {
		suite.allocService.On("SetAllocationRules", mock.Anything, int64(3), mock.AnythingOfType("dto.AllocationSplitRequest")).
			Return(nil, apperrors.ErrValidation).Once()

		w := suite.do(http.MethodPut, "/api/v1/properties/3/allocation-rules", map[string]any{
			"allocations": []map[string]any{{"ownerID": 1, "allocationPct": "70"}, {"ownerID": 2, "allocationPct": "20"}},
		})
		suite.Equal(http.StatusBadRequest, w.Code)
	})

	suite.allocService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAllocationRules_List() {
	suite.allocService.On("GetAllocationRules", mock.Anything, int64(3)).Return([]domain.ExpenseAllocationRule{
		{ID: 1, PropertyID: 3, OwnerID: 1, ExpenseType: "all", AllocationPct: decimal.NewFromInt(50)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/properties/3/allocation-rules", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"expenseType":"all"`)
}
