package domain

// Client represents a bank client who owns zero or more accounts.
type Client struct {
	ClientID       string `json:"clientId"`
	Name           string `json:"name"`
	Gender         Gender `json:"gender"`
	Age            int    `json:"age"`
	Identification string `json:"identification"` // Unique national/tax identifier
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	PasswordHash   string `json:"-"` // bcrypt hash, never serialized
	Status         Status `json:"status"`
	AuditFields
}
