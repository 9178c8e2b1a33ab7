package composite

import (
	"context"
	"fmt"
	"net/url"

	"github.com/finserv-tools/bank_management_app/internal/dto"
)

// AccountServiceClient calls the account service HTTP API.
type AccountServiceClient struct {
	httpCaller
}

// NewAccountServiceClient creates a client against the account service base URL.
func NewAccountServiceClient(baseURL string) *AccountServiceClient {
	return &AccountServiceClient{newHTTPCaller(baseURL)}
}

// GetAccountsByClient fetches the accounts owned by a client.
func (c *AccountServiceClient) GetAccountsByClient(ctx context.Context, clientID string) ([]dto.AccountResponse, error) {
	var accounts []dto.AccountResponse
	path := "/api/v1/accounts?clientId=" + url.QueryEscape(clientID)
	if err := c.getJSON(ctx, path, &accounts); err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for client %s: %w", clientID, err)
	}
	return accounts, nil
}

// GetTransactionsByAccount fetches an account's transaction history.
func (c *AccountServiceClient) GetTransactionsByAccount(ctx context.Context, accountNumber string) ([]dto.TransactionResponse, error) {
	var txns []dto.TransactionResponse
	path := "/api/v1/accounts/" + url.PathEscape(accountNumber) + "/transactions"
	if err := c.getJSON(ctx, path, &txns); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for account %s: %w", accountNumber, err)
	}
	return txns, nil
}
