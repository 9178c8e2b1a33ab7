package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. The ID comes from a
// BIGSERIAL sequence so insertion order is recoverable even when two
// movements share a timestamp.
type Transaction struct {
	ID              int64           `db:"transaction_id"`
	Date            time.Time       `db:"date"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Balance         decimal.Decimal `db:"balance"`
	AccountNumber   string          `db:"account_number"`
}
