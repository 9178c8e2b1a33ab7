package models

// Client is a row of the clients table.
type Client struct {
	ClientID       string `db:"client_id"`
	Name           string `db:"name"`
	GenderCode     string `db:"gender_code"`
	Age            int    `db:"age"`
	Identification string `db:"identification"`
	Address        string `db:"address"`
	Phone          string `db:"phone"`
	PasswordHash   string `db:"password_hash"`
	StatusCode     string `db:"status_code"`
	AuditFields
}
