package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/handlers"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.mockSvc = new(MockTransactionService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Transaction: suite.mockSvc,
	}, nil)
}

func (suite *TransactionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expected := &domain.Transaction{
		ID:              7,
		Date:            now,
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("25.50"),
		Balance:         decimal.RequireFromString("125.50"),
		AccountNumber:   "ACC-001",
	}
	suite.mockSvc.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"accountNumber":   "ACC-001",
		"transactionType": "DEPOSIT",
		"amount":          "25.50",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.ID)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("125.50")))
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InsufficientFunds() {
	suite.mockSvc.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("insufficient funds: %w", apperrors.ErrBusiness)).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"accountNumber":   "ACC-001",
		"transactionType": "WITHDRAWAL",
		"amount":          "1000",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(http.StatusUnprocessableEntity, resp.Status)
	suite.Equal("Unprocessable Entity", resp.Error)
	suite.Equal("/api/v1/transactions", resp.Path)
	suite.NotEmpty(resp.CorrelationID)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ZeroAmountRejectedByBinding() {
	w := suite.postJSON("/api/v1/transactions", gin.H{
		"accountNumber":   "ACC-001",
		"transactionType": "DEPOSIT",
		"amount":          "0",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownKindRejectedByBinding() {
	w := suite.postJSON("/api/v1/transactions", gin.H{
		"accountNumber":   "ACC-001",
		"transactionType": "TRANSFER",
		"amount":          "10",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockSvc.On("GetTransactionByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("transaction 99: %w", apperrors.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Not Found", resp.Error)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_CorrelationIDEchoed() {
	suite.mockSvc.On("GetTransactionByID", mock.Anything, int64(1)).
		Return(&domain.Transaction{ID: 1, TransactionType: domain.Deposit}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/1", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "corr-abc-123")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("corr-abc-123", w.Header().Get(middleware.CorrelationIDHeader))
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsByAccount() {
	expected := []domain.Transaction{
		{ID: 2, TransactionType: domain.Withdrawal, AccountNumber: "ACC-001"},
		{ID: 1, TransactionType: domain.Deposit, AccountNumber: "ACC-001"},
	}
	suite.mockSvc.On("ListTransactionsByAccount", mock.Anything, "ACC-001").Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/ACC-001/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(int64(2), resp[0].ID)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	suite.mockSvc.On("DeleteTransaction", mock.Anything, int64(5)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
