package dto

// AccountSummary pairs an account with its transaction history for the
// composite client summary view.
type AccountSummary struct {
	Account      AccountResponse       `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ClientSummaryResponse is the composite view assembled from the client and
// account services.
type ClientSummaryResponse struct {
	Client   ClientResponse   `json:"client"`
	Accounts []AccountSummary `json:"accounts"`
}
