package model

// Error codes returned in ErrorResponse.Code
const (
	CodeUnknownChain   = "UNKNOWN_CHAIN"
	CodeMalformedRoute = "MALFORMED_ROUTE"
	CodeNoAccounts     = "NO_ACCOUNTS"
	CodeBadRequest     = "BAD_REQUEST"
	CodeInternal       = "INTERNAL"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
