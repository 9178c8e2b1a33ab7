package services

import (
	"context"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// ClientSvcFacade defines the client management operations.
type ClientSvcFacade interface {
	// CreateClient registers a new client with a hashed password.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	// GetClientByID returns the client or apperrors.ErrNotFound.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	// GetClientByIdentification returns the client holding the given national
	// identification or apperrors.ErrNotFound.
	GetClientByIdentification(ctx context.Context, identification string) (*domain.Client, error)
	// ListClients returns every client.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// UpdateClient applies a partial update to an existing client.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	// DeleteClient soft-deletes a client by flipping its status to INACTIVE.
	DeleteClient(ctx context.Context, clientID string) error
}
