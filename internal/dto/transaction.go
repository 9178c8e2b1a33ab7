package dto

import (
	"time"

	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to apply a transaction.
// Amount is the user-entered magnitude and must be strictly positive for both
// kinds; the sign stored on the record is derived from the kind. The dgt0
// validation is registered during router setup.
type CreateTransactionRequest struct {
	AccountNumber   string                 `json:"accountNumber" binding:"required"`
	TransactionType domain.TransactionKind `json:"transactionType" binding:"required,oneof=DEPOSIT WITHDRAWAL"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,dgt0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              int64                  `json:"id"`
	Date            time.Time              `json:"date"`
	TransactionType domain.TransactionKind `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Balance         decimal.Decimal        `json:"balance"`
	AccountNumber   string                 `json:"accountNumber"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		Date:            txn.Date,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Balance:         txn.Balance,
		AccountNumber:   txn.AccountNumber,
	}
}

// ToTransactionResponses converts a slice of domain transactions to response DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
