package composite

import (
	"context"
	"log/slog"

	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
)

// Service aggregates client and account data into summary views.
type Service struct {
	clients  *ClientServiceClient
	accounts *AccountServiceClient
}

// NewService creates a composite service from the two downstream clients.
func NewService(clients *ClientServiceClient, accounts *AccountServiceClient) *Service {
	return &Service{clients: clients, accounts: accounts}
}

// GetClientSummary fetches the client, its accounts and each account's
// transaction history, and folds them into one response.
func (s *Service) GetClientSummary(ctx context.Context, clientID string) (*dto.ClientSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		logger.Error("Failed to fetch client for summary", slog.String("client_id", clientID), slog.String("error", err.Error()))
		return nil, err
	}

	accounts, err := s.accounts.GetAccountsByClient(ctx, clientID)
	if err != nil {
		logger.Error("Failed to fetch accounts for summary", slog.String("client_id", clientID), slog.String("error", err.Error()))
		return nil, err
	}

	summary := &dto.ClientSummaryResponse{
		Client:   *client,
		Accounts: make([]dto.AccountSummary, 0, len(accounts)),
	}
	for _, account := range accounts {
		txns, err := s.accounts.GetTransactionsByAccount(ctx, account.AccountNumber)
		if err != nil {
			logger.Error("Failed to fetch transactions for summary",
				slog.String("client_id", clientID),
				slog.String("account_number", account.AccountNumber),
				slog.String("error", err.Error()))
			return nil, err
		}
		summary.Accounts = append(summary.Accounts, dto.AccountSummary{
			Account:      account,
			Transactions: txns,
		})
	}

	logger.Info("Client summary assembled",
		slog.String("client_id", clientID),
		slog.Int("account_count", len(summary.Accounts)))
	return summary, nil
}
