package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies the kind of balance-affecting event. The set is
// closed: adding a kind means adding a case to the strategy dispatch, not a
// runtime-pluggable registry.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is an immutable record of one balance-affecting event.
//
// Amount stores the signed delta applied to the balance: positive for deposits,
// negative for withdrawals. Balance is the account's current balance immediately
// after this transaction was applied (a point-in-time snapshot, not a running
// total computed at read time).
type Transaction struct {
	ID              int64           `json:"id"`   // Assigned by the store, monotonic
	Date            time.Time       `json:"date"` // Assigned at creation, never modified
	TransactionType TransactionKind `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Balance         decimal.Decimal `json:"balance"`
	AccountNumber   string          `json:"accountNumber"` // Owning account, never reassigned
}
