package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionServiceImpl)

// WithTransactionClock overrides the clock, used by tests for deterministic dates
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.now = now
	}
}

// NewTransactionServiceImpl creates a new transaction service
func NewTransactionServiceImpl(repo portsrepo.TransactionRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionServiceImpl{
		transactionRepo: repo,
		now:             func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

// CreateTransaction applies a deposit or withdrawal against the target account.
// All precondition checks and the balance mutation run inside the closure the
// repository executes under its row lock, so concurrent movements on the same
// account serialize and the balance can never go negative.
func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.SaveTransactionForAccount(ctx, req.AccountNumber, func(account domain.Account) (domain.Account, domain.Transaction, error) {
		if !account.IsActive() {
			return account, domain.Transaction{}, fmt.Errorf("account %s is not active: %w", account.AccountNumber, apperrors.ErrBusiness)
		}
		return applyTransaction(account, req.TransactionType, req.Amount, s.now())
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("account_number", req.AccountNumber),
			slog.String("transaction_type", string(req.TransactionType)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.Int64("transaction_id", txn.ID),
		slog.String("account_number", txn.AccountNumber),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("balance", txn.Balance.String()))
	return txn, nil
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", id))
		return nil, err
	}
	return txn, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return txns, nil
}

func (s *transactionServiceImpl) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for account", slog.String("account_number", accountNumber))
		return nil, err
	}
	return txns, nil
}

// DeleteTransaction removes a transaction record without adjusting the owning
// account's balance.
func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", id))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", id))
	return nil
}
