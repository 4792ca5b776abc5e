package model

// ReceiveResponse represents response for GET /receive
type ReceiveResponse struct {
	ChainID           string          `json:"chainId"`
	Accounts          []AccountOption `json:"accounts"`
	SelectedAccountID string          `json:"selectedAccountId,omitempty"`
	Address           string          `json:"address,omitempty"`
	Link              string          `json:"link,omitempty"`
	Request           *PaymentRequest `json:"request,omitempty"`
	QR                string          `json:"qr,omitempty"` // base64 PNG of Link
}

// ReceiveLink is the receive link of a single account
type ReceiveLink struct {
	AccountID string `json:"accountId"`
	Address   string `json:"address"`
	Link      string `json:"link"`
}

// SendTarget represents response for GET /send/target
type SendTarget struct {
	ChainID string         `json:"chainId,omitempty"`
	Request PaymentRequest `json:"request"`
	Valid   bool           `json:"valid"`
	Reason  string         `json:"reason,omitempty"`
}
