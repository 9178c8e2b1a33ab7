package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. Reference descriptions are joined
// in at query time, so the row itself carries only the catalog codes.
type Account struct {
	AccountNumber   string          `db:"account_number"`
	AccountTypeCode string          `db:"account_type_code"`
	InitialBalance  decimal.Decimal `db:"initial_balance"`
	CurrentBalance  decimal.Decimal `db:"current_balance"`
	StatusCode      string          `db:"status_code"`
	ClientID        string          `db:"client_id"`
	AuditFields
}
