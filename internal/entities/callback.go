package entities

import "github.com/shopspring/decimal"

// Callback is what the gateway appends to the success or failure URL.
// Nothing in it is trusted until the backend verifies it.
type Callback struct {
	TransactionUUID  string
	ProductCode      string
	TotalAmount      decimal.Decimal
	Status           string
	GatewayRef       string
	SignedFieldNames string
	Signature        string
	Reason           string

	// Params are the decoded values forwarded to the backend for verification.
	Params map[string]string
}
