package dto

import (
	"time"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to register a new account.
type CreateAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Username:      acc.Username,
		Email:         acc.Email,
		Currency:      string(acc.Currency),
		Amount:        acc.Amount,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}
