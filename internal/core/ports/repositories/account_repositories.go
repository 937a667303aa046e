package repositories

import (
	"context"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts currently in the store.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. Duplicate identifiers are rejected.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that mutate one or more
// accounts as a single atomic unit.
type AccountTransactionSupport interface {
	// Transact resolves accountIDs to working copies, invokes fn with them,
	// and commits the (possibly mutated) copies back only if fn returns nil.
	// The whole sequence is atomic with respect to every other store
	// operation: no concurrent reader or writer observes fn's mutations
	// partially applied. Missing IDs map to nil entries so fn owns the
	// existence-check error precedence.
	Transact(ctx context.Context, accountIDs []string, fn func(accounts map[string]*domain.Account) error) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
