package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a read-only, date-bounded aggregation of a client's accounts and
// their transactions, produced for reporting. It never feeds back into state.
type Statement struct {
	ClientID   string             `json:"clientId"`
	ClientName string             `json:"clientName"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    time.Time          `json:"endDate"`
	Accounts   []AccountStatement `json:"accounts"`
}

// AccountStatement is the per-account section of a Statement.
type AccountStatement struct {
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"` // Reference description
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"` // Reference description
	Transactions   []Transaction   `json:"transactions"`
}
