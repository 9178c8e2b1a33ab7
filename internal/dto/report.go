package dto

import (
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams defines query parameters for statement generation.
// Dates are RFC 3339 timestamps.
type StatementParams struct {
	ClientID  string    `form:"clientId" binding:"required"`
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// StatementResponse is the client-facing account statement report.
type StatementResponse struct {
	ClientID   string                     `json:"clientId"`
	ClientName string                     `json:"clientName"`
	StartDate  time.Time                  `json:"startDate"`
	EndDate    time.Time                  `json:"endDate"`
	Accounts   []AccountStatementResponse `json:"accounts"`
}

// AccountStatementResponse is the per-account section of a statement.
type AccountStatementResponse struct {
	AccountNumber  string                `json:"accountNumber"`
	AccountType    string                `json:"accountType"`
	InitialBalance decimal.Decimal       `json:"initialBalance"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	Status         string                `json:"status"`
	Transactions   []TransactionResponse `json:"transactions"`
}

// ToStatementResponse converts a domain.Statement to StatementResponse.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	accounts := make([]AccountStatementResponse, len(s.Accounts))
	for i, acc := range s.Accounts {
		accounts[i] = AccountStatementResponse{
			AccountNumber:  acc.AccountNumber,
			AccountType:    acc.AccountType,
			InitialBalance: acc.InitialBalance,
			CurrentBalance: acc.CurrentBalance,
			Status:         acc.Status,
			Transactions:   ToTransactionResponses(acc.Transactions),
		}
	}
	return StatementResponse{
		ClientID:   s.ClientID,
		ClientName: s.ClientName,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Accounts:   accounts,
	}
}
