package models

// AccountType is a row of the account_types catalog.
type AccountType struct {
	Code        string `db:"code"`
	Description string `db:"description"`
	Active      bool   `db:"active"`
}

// Status is a row of the statuses catalog.
type Status struct {
	Code        string `db:"code"`
	Description string `db:"description"`
	Active      bool   `db:"active"`
}

// Gender is a row of the genders catalog.
type Gender struct {
	Code        string `db:"code"`
	Description string `db:"description"`
	Active      bool   `db:"active"`
}
