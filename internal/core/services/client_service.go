package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portsrepo "github.com/finserv-tools/bank_management_app/internal/core/ports/repositories"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/utils"
	"github.com/google/uuid"
)

// clientServiceImpl implements the ClientSvcFacade interface
type clientServiceImpl struct {
	BaseService
	clientRepo    portsrepo.ClientRepository
	referenceRepo portsrepo.ReferenceRepository
	now           func() time.Time
}

// ClientServiceOption is a functional option for configuring the client service
type ClientServiceOption func(*clientServiceImpl)

// WithClientClock overrides the clock, used by tests for deterministic timestamps
func WithClientClock(now func() time.Time) ClientServiceOption {
	return func(s *clientServiceImpl) {
		s.now = now
	}
}

// NewClientServiceImpl creates a new client service
func NewClientServiceImpl(clientRepo portsrepo.ClientRepository, referenceRepo portsrepo.ReferenceRepository, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientServiceImpl{
		clientRepo:    clientRepo,
		referenceRepo: referenceRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure clientServiceImpl implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientServiceImpl)(nil)

func (s *clientServiceImpl) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByIdentification(ctx, req.Identification)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check client identification", slog.String("identification", req.Identification))
		return nil, err
	}
	if existing != nil {
		err := fmt.Errorf("client with identification %s already exists: %w", req.Identification, apperrors.ErrDuplicate)
		s.LogError(ctx, err, "Client already exists", slog.String("identification", req.Identification))
		return nil, err
	}

	gender, err := s.referenceRepo.FindGenderByCodeActive(ctx, req.Gender)
	if err != nil {
		s.LogError(ctx, err, "Gender not resolvable", slog.String("gender", req.Gender))
		return nil, fmt.Errorf("gender %q: %w", req.Gender, err)
	}
	status, err := s.referenceRepo.FindStatusByCodeActive(ctx, req.Status)
	if err != nil {
		s.LogError(ctx, err, "Status not resolvable", slog.String("status", req.Status))
		return nil, fmt.Errorf("status %q: %w", req.Status, err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	client := domain.Client{
		ClientID:       uuid.NewString(),
		Name:           req.Name,
		Gender:         *gender,
		Age:            req.Age,
		Identification: req.Identification,
		Address:        req.Address,
		Phone:          req.Phone,
		PasswordHash:   passwordHash,
		Status:         *status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientServiceImpl) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *clientServiceImpl) GetClientByIdentification(ctx context.Context, identification string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByIdentification(ctx, identification)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client by identification", slog.String("identification", identification))
		return nil, err
	}
	return client, nil
}

func (s *clientServiceImpl) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	return clients, nil
}

func (s *clientServiceImpl) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client for update", slog.String("client_id", clientID))
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Gender != nil {
		gender, err := s.referenceRepo.FindGenderByCodeActive(ctx, *req.Gender)
		if err != nil {
			s.LogError(ctx, err, "Gender not resolvable", slog.String("gender", *req.Gender))
			return nil, fmt.Errorf("gender %q: %w", *req.Gender, err)
		}
		client.Gender = *gender
	}
	if req.Age != nil {
		if *req.Age <= 0 {
			return nil, fmt.Errorf("age must be greater than zero: %w", apperrors.ErrValidation)
		}
		client.Age = *req.Age
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		client.PasswordHash = passwordHash
	}
	if req.Status != nil {
		status, err := s.referenceRepo.FindStatusByCodeActive(ctx, *req.Status)
		if err != nil {
			s.LogError(ctx, err, "Status not resolvable", slog.String("status", *req.Status))
			return nil, fmt.Errorf("status %q: %w", *req.Status, err)
		}
		client.Status = *status
	}
	client.LastUpdatedAt = s.now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client updated successfully", slog.String("client_id", clientID))
	return client, nil
}

// DeleteClient flips the client status to INACTIVE. Accounts owned by the
// client are left as they are.
func (s *clientServiceImpl) DeleteClient(ctx context.Context, clientID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client for deletion", slog.String("client_id", clientID))
		return err
	}
	if client.Status.Code != domain.StatusActive {
		s.LogInfo(ctx, "Client already inactive", slog.String("client_id", clientID))
		return nil
	}

	inactive, err := s.referenceRepo.FindStatusByCode(ctx, domain.StatusInactive)
	if err != nil {
		s.LogError(ctx, err, "Inactive status missing from reference data")
		return err
	}
	client.Status = *inactive
	client.LastUpdatedAt = s.now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to deactivate client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deactivated", slog.String("client_id", clientID))
	return nil
}
