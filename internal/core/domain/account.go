package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a client's balance-holding entity within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountNumber  string          `json:"accountNumber"`  // Unique external identifier, immutable
	AccountType    AccountType     `json:"accountType"`    // Resolved reference entity
	InitialBalance decimal.Decimal `json:"initialBalance"` // Balance recorded at creation, never mutated
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Mutated only by the transaction processor
	Status         Status          `json:"status"`         // Only ACTIVE accounts accept transactions
	ClientID       string          `json:"clientId"`       // Owning client reference
	AuditFields
}

// IsActive reports whether the account currently accepts transactions.
func (a Account) IsActive() bool {
	return a.Status.Code == StatusActive
}
