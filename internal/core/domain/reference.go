package domain

// Well-known reference codes. The tables are administrator-managed; only these
// two status codes carry behavior in the core.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// AccountType is an administrator-managed account classification (e.g. SAVINGS,
// CHECKING). Inactive types are not assignable to new accounts.
type AccountType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Status is an administrator-managed entity status (e.g. ACTIVE, INACTIVE).
type Status struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Gender is an administrator-managed reference used by client records.
type Gender struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}
