package services

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// TransactionSvcFacade defines the transaction processing operations.
type TransactionSvcFacade interface {
	// CreateTransaction applies a deposit or withdrawal atomically against the
	// target account and returns the persisted movement with the resulting
	// balance snapshot.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// GetTransactionByID returns the transaction or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// ListTransactions returns every transaction, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// ListTransactionsByAccount returns an account's transactions, newest first.
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
	// DeleteTransaction removes a transaction record. The owning account's
	// balance is intentionally left untouched.
	DeleteTransaction(ctx context.Context, id int64) error
}
