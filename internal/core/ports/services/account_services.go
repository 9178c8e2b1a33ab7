package services

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// AccountSvcFacade defines the account lifecycle operations.
type AccountSvcFacade interface {
	// CreateAccount opens a new account after resolving its account type and
	// status against the active reference catalogs.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	// GetAccountByNumber returns the account or apperrors.ErrNotFound.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	// ListAccounts returns every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// ListAccountsByClient returns the accounts owned by the given client.
	ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error)
	// UpdateAccount applies a partial update to an existing account.
	UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeleteAccount soft-deletes an account by flipping its status to INACTIVE.
	DeleteAccount(ctx context.Context, accountNumber string) error
}
