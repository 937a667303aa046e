package domain

// Account represents a ledger account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID string   `json:"id"`       // Primary Key (UUID)
	Username  string   `json:"username"` // Owner display name
	Email     string   `json:"email"`    // Owner contact
	Currency  Currency `json:"currency"` // Denomination of Amount
	Amount    float64  `json:"amount"`   // Current balance in the account's own currency
	AuditFields
}
