package dto

import (
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// InitialBalance deliberately has no sign constraint; see DESIGN.md.
type CreateAccountRequest struct {
	AccountNumber  string          `json:"accountNumber" binding:"required"`
	AccountType    string          `json:"accountType" binding:"required"`
	Status         string          `json:"status" binding:"required"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	ClientID       string          `json:"clientId" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for a partial account update.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	AccountType *string `json:"accountType"`
	Status      *string `json:"status"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
	ClientID       string          `json:"clientId"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:  acc.AccountNumber,
		AccountType:    acc.AccountType.Code,
		InitialBalance: acc.InitialBalance,
		CurrentBalance: acc.CurrentBalance,
		Status:         acc.Status.Code,
		ClientID:       acc.ClientID,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
