package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/handlers"
	"github.com/SscSPs/household_ledger/internal/importing/csvsource"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	cfg             *config.Config
	accountService  *MockAccountService
	ledgerService   *MockLedgerService
	transferService *MockTransferService
	importService   *MockImportService
	equityService   *MockEquityService
	allocService    *MockAllocationService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.accountService = new(MockAccountService)
	suite.ledgerService = new(MockLedgerService)
	suite.transferService = new(MockTransferService)
	suite.importService = new(MockImportService)
	suite.equityService = new(MockEquityService)
	suite.allocService = new(MockAllocationService)
	suite.cfg = &config.Config{IsProduction: true, DefaultBankAccount: "Bank"}
	suite.router = suite.newRouter(suite.cfg)
}

func (suite *HandlerTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	profiles, err := csvsource.NewRegistry("")
	suite.Require().NoError(err)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Account:    suite.accountService,
		Ledger:     suite.ledgerService,
		Transfer:   suite.transferService,
		Import:     suite.importService,
		Equity:     suite.equityService,
		Allocation: suite.allocService,
	}, profiles)
	return r
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	req := dto.CreateAccountRequest{Name: "Savings", Type: domain.Asset}
	suite.accountService.On("CreateAccount", mock.Anything, req).
		Return(&domain.Account{ID: 7, Name: "Savings", Type: domain.Asset}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.Equal(domain.Asset, resp.Type)
	suite.accountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestServiceErrorsMapToStatus() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: apperrors.ErrValidation, status: http.StatusBadRequest},
		{name: "duplicate", err: apperrors.ErrDuplicate, status: http.StatusConflict},
		{name: "not found", err: apperrors.ErrNotFound, status: http.StatusNotFound},
		{name: "app error", err: apperrors.NewAppError(http.StatusForbidden, "system account", nil), status: http.StatusForbidden},
		{name: "unexpected", err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.accountService.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{Name: "Bank", Type: domain.Asset})

			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to create account", suite.errorBody(w))
			}
		})
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_RejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]string{"name": "Odd", "type": "CASH"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.accountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAccountBalance_MissingAccount() {
	suite.accountService.On("GetAccountByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/99/balance", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.ledgerService.AssertNotCalled(suite.T(), "GetBalance", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAccountBalance() {
	suite.accountService.On("GetAccountByID", mock.Anything, int64(3)).Return(&domain.Account{ID: 3}, nil).Once()
	suite.ledgerService.On("GetBalance", mock.Anything, int64(3)).Return(decimal.RequireFromString("-42.10"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/3/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("-42.10", resp.Balance.StringFixed(2))
}

func (suite *HandlerTestSuite) TestInvalidPathID() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry() {
	suite.ledgerService.On("PostEntry", mock.Anything,
		mock.MatchedBy(func(h domain.JournalEntry) bool {
			return h.Description == "Groceries" && domain.FormatDate(h.Date) == "2024-01-15"
		}),
		mock.MatchedBy(func(lines []domain.BookEntry) bool {
			return len(lines) == 2 && lines[0].Amount.Equal(decimal.RequireFromString("42.10"))
		}),
	).Return(int64(11), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", map[string]any{
		"date":        "2024-01-15",
		"description": "Groceries",
		"lines": []map[string]any{
			{"accountID": 5, "amount": "42.10"},
			{"accountID": 1, "amount": "-42.10"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(11), resp.JournalEntryID)
}

func (suite *HandlerTestSuite) TestPostEntry_BindingValidation() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "three decimal places",
			body: map[string]any{
				"date": "2024-01-15", "description": "x",
				"lines": []map[string]any{{"accountID": 5, "amount": "10.005"}, {"accountID": 1, "amount": "-10.005"}},
			},
		},
		{
			name: "amount out of range",
			body: map[string]any{
				"date": "2024-01-15", "description": "x",
				"lines": []map[string]any{{"accountID": 5, "amount": "10000000000000"}, {"accountID": 1, "amount": "-10000000000000"}},
			},
		},
		{
			name: "bad date",
			body: map[string]any{
				"date": "15/01/2024", "description": "x",
				"lines": []map[string]any{{"accountID": 5, "amount": "1"}, {"accountID": 1, "amount": "-1"}},
			},
		},
		{
			name: "missing description",
			body: map[string]any{
				"date":  "2024-01-15",
				"lines": []map[string]any{{"accountID": 5, "amount": "1"}, {"accountID": 1, "amount": "-1"}},
			},
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/entries", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.ledgerService.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostEntry_StoreBusy() {
	suite.ledgerService.On("PostEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), apperrors.ErrStoreBusy).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", map[string]any{
		"date": "2024-01-15", "description": "Rent",
		"lines": []map[string]any{{"accountID": 5, "amount": "900"}, {"accountID": 1, "amount": "-900"}},
	})

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("1", w.Header().Get("Retry-After"))
}

func (suite *HandlerTestSuite) TestListEntries_Pagination() {
	items := []domain.EntryListItem{
		{JournalEntry: domain.JournalEntry{ID: 2, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, EntriesSummary: "Bank:-1.00|Food:1.00"},
		{JournalEntry: domain.JournalEntry{ID: 1, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, EntriesSummary: "Bank:-2.00|Food:2.00"},
	}
	suite.ledgerService.On("ListEntries", mock.Anything, domain.EntryFilter{}, domain.Page{Limit: 2, Offset: 0}).
		Return(items, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries?limit=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var first dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &first))
	suite.Len(first.Entries, 2)
	suite.Equal("2024-01-02", first.Entries[0].Date)
	suite.Require().NotNil(first.NextToken)

	suite.ledgerService.On("ListEntries", mock.Anything, domain.EntryFilter{}, domain.Page{Limit: 2, Offset: 2}).
		Return([]domain.EntryListItem{}, nil).Once()

	w = suite.do(http.MethodGet, "/api/v1/entries?limit=2&nextToken="+*first.NextToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var second dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &second))
	suite.Empty(second.Entries)
	suite.Nil(second.NextToken)
	suite.ledgerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListEntries_BadToken() {
	w := suite.do(http.MethodGet, "/api/v1/entries?nextToken=%21%21", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	token := pagination.EncodeMultiFieldToken("cursor", "abc")
	w = suite.do(http.MethodGet, "/api/v1/entries?nextToken="+token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTransfer_InsufficientEquity() {
	suite.transferService.On("TransferEquity", mock.Anything, mock.AnythingOfType("dto.TransferEquityRequest")).
		Return(nil, apperrors.ErrInsufficientEquity).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", map[string]any{
		"fromPropertyID": 1, "toPropertyID": 2, "ownerID": 1, "amount": "50000", "date": "2024-06-01",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestListTransfers_Filter() {
	propertyID := int64(4)
	suite.transferService.On("GetTransfers", mock.Anything, domain.TransferFilter{PropertyID: &propertyID}).
		Return([]domain.PropertyTransfer{{ID: 1, FromPropertyID: 4, ToPropertyID: 5}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transfers?propertyID=4", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.transferService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestImportCSV_DefaultsToBankAccount() {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "statement.csv")
	suite.Require().NoError(err)
	_, err = io.WriteString(part, "Date,Description,Amount\n2024-01-15,Albert Heijn,-42.10\n2024-01-16,Salary,3000.00\n")
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	suite.importService.On("Run", mock.Anything,
		dto.ImportMeta{Filename: "statement.csv", BankConfig: csvsource.GenericProfile, AccountName: "Bank"},
		mock.MatchedBy(func(txns []domain.RawTransaction) bool {
			return len(txns) == 2 && txns[0].Fingerprint != ""
		}),
	).Return(&domain.ImportResult{BatchID: 1, ImportedCount: 2, TotalCount: 2}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/csv", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.ImportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.ImportedCount)
	suite.importService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestImportCSV_UnknownProfile() {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "statement.csv")
	suite.Require().NoError(err)
	_, _ = io.WriteString(part, "Date,Description,Amount\n")
	suite.Require().NoError(form.WriteField("profile", "no-such-bank"))
	suite.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/csv", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.True(strings.Contains(suite.errorBody(w), "no-such-bank"))
}

func (suite *HandlerTestSuite) TestImportJSON_Preview() {
	suite.importService.On("Preview", mock.Anything, mock.Anything, mock.MatchedBy(func(txns []domain.RawTransaction) bool {
		return len(txns) == 1 && txns[0].Description == "Coffee"
	})).Return([]domain.RawTransaction{{Description: "Coffee", IsDuplicate: true}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/imports/preview", map[string]any{
		"accountName":  "Bank",
		"transactions": []map[string]any{{"date": "2024-02-01", "description": " Coffee ", "amount": "-3.20"}},
	})

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ImportPreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.True(resp.Transactions[0].IsDuplicate)
}

func (suite *HandlerTestSuite) TestAuth() {
	router := suite.newRouter(&config.Config{IsProduction: true, AuthSecret: testSecret})
	suite.accountService.On("ListAccounts", mock.Anything).Return([]domain.Account{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateJWT("household", testSecret, time.Hour, "test")
	suite.Require().NoError(err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	// The health check stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
