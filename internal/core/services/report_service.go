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
)

// reportServiceImpl implements the ReportSvcFacade interface
type reportServiceImpl struct {
	BaseService
	clientRepo      portsrepo.ClientRepository
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewReportServiceImpl creates a new report service
func NewReportServiceImpl(clientRepo portsrepo.ClientRepository, accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository) portssvc.ReportSvcFacade {
	return &reportServiceImpl{
		clientRepo:      clientRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure reportServiceImpl implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportServiceImpl)(nil)

// GenerateStatement builds the statement for every account the client owns,
// restricted to movements inside the inclusive [startDate, endDate] window.
// Accounts without movements in the window still appear with an empty list.
func (s *reportServiceImpl) GenerateStatement(ctx context.Context, clientID string, startDate, endDate time.Time) (*domain.Statement, error) {
	if endDate.Before(startDate) {
		err := fmt.Errorf("end date %s is before start date %s: %w",
			endDate.Format(time.RFC3339), startDate.Format(time.RFC3339), apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid statement date range", slog.String("client_id", clientID))
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client for statement", slog.String("client_id", clientID))
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for statement", slog.String("client_id", clientID))
		return nil, err
	}
	if len(accounts) == 0 {
		s.LogWarn(ctx, "Client has no accounts, statement will be empty", slog.String("client_id", clientID))
	}

	statement := &domain.Statement{
		ClientID:   client.ClientID,
		ClientName: client.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		Accounts:   make([]domain.AccountStatement, 0, len(accounts)),
	}

	for _, account := range accounts {
		txns, err := s.transactionRepo.ListTransactionsByAccountBetween(ctx, account.AccountNumber, startDate, endDate)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions for statement",
				slog.String("client_id", clientID),
				slog.String("account_number", account.AccountNumber))
			return nil, err
		}
		statement.Accounts = append(statement.Accounts, domain.AccountStatement{
			AccountNumber:  account.AccountNumber,
			AccountType:    account.AccountType.Code,
			InitialBalance: account.InitialBalance,
			CurrentBalance: account.CurrentBalance,
			Status:         account.Status.Code,
			Transactions:   txns,
		})
	}

	s.LogInfo(ctx, "Statement generated",
		slog.String("client_id", clientID),
		slog.Int("account_count", len(statement.Accounts)))
	return statement, nil
}
