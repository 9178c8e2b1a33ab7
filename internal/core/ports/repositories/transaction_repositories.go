package repositories

import (
	"context"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// ProcessFunc evaluates a transaction against an account whose balance is
// current and exclusively held by the store for the duration of the call.
// It returns the mutated account and the unpersisted transaction record, or an
// error to abort with no persisted change.
type ProcessFunc func(account domain.Account) (domain.Account, domain.Transaction, error)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransactionForAccount runs process against the identified account
	// under a per-account serialization point and, on success, persists the
	// balance update and the new transaction record as a single unit of work.
	// Both commit or neither does. The returned transaction carries the
	// store-assigned ID. Returns a wrapped apperrors.ErrNotFound when the
	// account does not exist; process errors are surfaced unchanged.
	SaveTransactionForAccount(ctx context.Context, accountNumber string, process ProcessFunc) (*domain.Transaction, error)

	// FindTransactionByID returns the transaction or a wrapped apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions returns every transaction, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount returns an account's transactions, newest first.
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error)

	// ListTransactionsByAccountBetween returns an account's transactions whose
	// date falls within [from, to] inclusive, newest first.
	ListTransactionsByAccountBetween(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction record. It deliberately does not
	// touch the owning account's balance.
	DeleteTransaction(ctx context.Context, id int64) error
}
