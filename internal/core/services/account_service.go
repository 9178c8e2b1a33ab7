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

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	clientRepo    portsrepo.ClientRepository
	referenceRepo portsrepo.ReferenceRepository
	now           func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountServiceImpl)

// WithAccountClock overrides the clock, used by tests for deterministic timestamps
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountServiceImpl) {
		s.now = now
	}
}

// NewAccountServiceImpl creates a new account service
func NewAccountServiceImpl(accountRepo portsrepo.AccountRepository, clientRepo portsrepo.ClientRepository, referenceRepo portsrepo.ReferenceRepository, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountServiceImpl{
		accountRepo:   accountRepo,
		clientRepo:    clientRepo,
		referenceRepo: referenceRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	exists, err := s.accountRepo.ExistsByAccountNumber(ctx, req.AccountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account existence", slog.String("account_number", req.AccountNumber))
		return nil, err
	}
	if exists {
		err := fmt.Errorf("account %s already exists: %w", req.AccountNumber, apperrors.ErrDuplicate)
		s.LogError(ctx, err, "Account already exists", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		s.LogError(ctx, err, "Client not found for new account",
			slog.String("client_id", req.ClientID))
		return nil, err
	}

	accountType, err := s.referenceRepo.FindAccountTypeByCodeActive(ctx, req.AccountType)
	if err != nil {
		s.LogError(ctx, err, "Account type not resolvable", slog.String("account_type", req.AccountType))
		return nil, fmt.Errorf("account type %q: %w", req.AccountType, err)
	}
	status, err := s.referenceRepo.FindStatusByCodeActive(ctx, req.Status)
	if err != nil {
		s.LogError(ctx, err, "Status not resolvable", slog.String("status", req.Status))
		return nil, fmt.Errorf("status %q: %w", req.Status, err)
	}

	now := s.now()
	account := domain.Account{
		AccountNumber:  req.AccountNumber,
		AccountType:    *accountType,
		InitialBalance: req.InitialBalance,
		CurrentBalance: req.InitialBalance,
		Status:         *status,
		ClientID:       req.ClientID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_number", account.AccountNumber),
		slog.String("client_id", account.ClientID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_number", accountNumber))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountServiceImpl) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for client", slog.String("client_id", clientID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for update", slog.String("account_number", accountNumber))
		return nil, err
	}

	if req.AccountType != nil {
		accountType, err := s.referenceRepo.FindAccountTypeByCodeActive(ctx, *req.AccountType)
		if err != nil {
			s.LogError(ctx, err, "Account type not resolvable", slog.String("account_type", *req.AccountType))
			return nil, fmt.Errorf("account type %q: %w", *req.AccountType, err)
		}
		account.AccountType = *accountType
	}
	if req.Status != nil {
		status, err := s.referenceRepo.FindStatusByCodeActive(ctx, *req.Status)
		if err != nil {
			s.LogError(ctx, err, "Status not resolvable", slog.String("status", *req.Status))
			return nil, fmt.Errorf("status %q: %w", *req.Status, err)
		}
		account.Status = *status
	}
	account.LastUpdatedAt = s.now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_number", accountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_number", accountNumber))
	return account, nil
}

// DeleteAccount flips the account status to INACTIVE. Records are never
// physically removed so transaction history stays intact.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, accountNumber string) error {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for deletion", slog.String("account_number", accountNumber))
		return err
	}
	if !account.IsActive() {
		s.LogInfo(ctx, "Account already inactive", slog.String("account_number", accountNumber))
		return nil
	}

	inactive, err := s.referenceRepo.FindStatusByCode(ctx, domain.StatusInactive)
	if err != nil {
		s.LogError(ctx, err, "Inactive status missing from reference data")
		return err
	}
	account.Status = *inactive
	account.LastUpdatedAt = s.now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_number", accountNumber))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_number", accountNumber))
	return nil
}
