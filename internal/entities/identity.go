package entities

import "slices"

const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)

// Identity is the caller behind a bearer token, as resolved by the backend.
type Identity struct {
	UserID   string
	Role     string
	PayerIDs []string
}

// CanAccess reports whether the caller may read a payer's attempts. Staff
// see every payer; parents and students only their own.
func (i Identity) CanAccess(payerID string) bool {
	if i.Role == RoleAdmin || i.Role == RoleAccountant {
		return true
	}
	return slices.Contains(i.PayerIDs, payerID)
}
