package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/core/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	now      time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionServiceImpl(suite.mockRepo,
		services.WithTransactionClock(func() time.Time { return suite.now }))
}

func (suite *TransactionServiceTestSuite) account(balance string, statusCode string) domain.Account {
	return domain.Account{
		AccountNumber:  "ACC-001",
		AccountType:    domain.AccountType{Code: "SAVINGS", Description: "Savings account", Active: true},
		InitialBalance: decimal.RequireFromString("100"),
		CurrentBalance: decimal.RequireFromString(balance),
		Status:         domain.Status{Code: statusCode, Description: statusCode, Active: true},
		ClientID:       "client-1",
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Deposit() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "ACC-001",
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("25.50"),
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "ACC-001").
		Return(suite.account("100", domain.StatusActive), nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(1), txn.ID)
	suite.Equal(domain.Deposit, txn.TransactionType)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("25.50")))
	suite.True(txn.Balance.Equal(decimal.RequireFromString("125.50")))
	suite.Equal(suite.now, txn.Date)
	suite.Require().NotNil(suite.mockRepo.SavedAccount)
	suite.True(suite.mockRepo.SavedAccount.CurrentBalance.Equal(decimal.RequireFromString("125.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Withdrawal() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "ACC-001",
		TransactionType: domain.Withdrawal,
		Amount:          decimal.RequireFromString("40"),
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "ACC-001").
		Return(suite.account("100", domain.StatusActive), nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("-40")), "withdrawal stored with negative sign")
	suite.True(txn.Balance.Equal(decimal.RequireFromString("60")))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InsufficientFunds() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "ACC-001",
		TransactionType: domain.Withdrawal,
		Amount:          decimal.RequireFromString("150"),
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "ACC-001").
		Return(suite.account("100", domain.StatusActive), nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBusiness)
	suite.Nil(txn)
	suite.Nil(suite.mockRepo.SavedAccount, "no account write may happen on rejection")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "ACC-001",
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("10"),
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "ACC-001").
		Return(suite.account("100", domain.StatusInactive), nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBusiness)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotFound() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "MISSING",
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("10"),
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "MISSING").
		Return(nil, fmt.Errorf("account MISSING: %w", apperrors.ErrNotFound)).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNumber:   "ACC-001",
		TransactionType: domain.Withdrawal,
		Amount:          decimal.Zero,
	}

	suite.mockRepo.On("SaveTransactionForAccount", ctx, "ACC-001").
		Return(suite.account("100", domain.StatusActive), nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, int64(99)).
		Return(nil, fmt.Errorf("transaction 99: %w", apperrors.ErrNotFound)).Once()

	txn, err := suite.service.GetTransactionByID(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount() {
	ctx := context.Background()
	expected := []domain.Transaction{
		{ID: 2, TransactionType: domain.Withdrawal, AccountNumber: "ACC-001"},
		{ID: 1, TransactionType: domain.Deposit, AccountNumber: "ACC-001"},
	}

	suite.mockRepo.On("ListTransactionsByAccount", ctx, "ACC-001").Return(expected, nil).Once()

	txns, err := suite.service.ListTransactionsByAccount(ctx, "ACC-001")

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteTransaction", ctx, int64(5)).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, 5)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactionForAccount", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
