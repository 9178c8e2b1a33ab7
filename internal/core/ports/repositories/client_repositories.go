package repositories

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	// SaveClient inserts a new client. Returns a wrapped apperrors.ErrDuplicate
	// when the identification is already registered.
	SaveClient(ctx context.Context, client domain.Client) error

	// FindClientByID returns the client or a wrapped apperrors.ErrNotFound.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByIdentification returns the client or a wrapped apperrors.ErrNotFound.
	FindClientByIdentification(ctx context.Context, identification string) (*domain.Client, error)

	// ListClients returns every client, ordered by name.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// UpdateClient replaces the mutable fields of an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error
}
