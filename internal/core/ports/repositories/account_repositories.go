package repositories

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns a wrapped apperrors.ErrDuplicate
	// when the account number is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByNumber returns the account or a wrapped apperrors.ErrNotFound.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ExistsByAccountNumber reports whether an account number is taken.
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)

	// ListAccounts returns every account, ordered by account number.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByClient returns the accounts owned by a client (possibly empty).
	ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error)

	// UpdateAccount replaces the mutable fields (type, status) of an existing
	// account. Returns apperrors.ErrNotFound when the account is missing.
	UpdateAccount(ctx context.Context, account domain.Account) error
}
