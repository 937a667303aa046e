// Package memory provides the in-memory account store. Accounts live for the
// process lifetime; there is no persistence and no expiry.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/peerpay/peer_payment_app/internal/apperrors"
	"github.com/peerpay/peer_payment_app/internal/core/domain"
	portsrepo "github.com/peerpay/peer_payment_app/internal/core/ports/repositories"
)

// AccountRepository is a thread-safe keyed store of account records.
// A single RWMutex serializes all writes; multi-account mutations run
// entirely inside one critical section, so readers never observe a
// half-applied transfer and no lock ordering is needed.
type AccountRepository struct {
	mu    sync.RWMutex
	accts map[string]domain.Account
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accts: make(map[string]domain.Account),
	}
}

// SaveAccount persists a new account. Identifiers are unique for the
// lifetime of the store.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accts[account.AccountID]; exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
	}
	r.accts[account.AccountID] = account
	return nil
}

// FindAccountByID retrieves a snapshot of the identified account.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.accts[accountID]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &acct, nil
}

// ListAccounts retrieves snapshots of every account in the store.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, 0, len(r.accts))
	for _, acct := range r.accts {
		out = append(out, acct)
	}
	return out, nil
}

// Transact runs fn against working copies of the identified accounts and
// commits the copies back only if fn returns nil. Missing identifiers are
// passed to fn as nil entries so the caller controls error precedence.
// The store lock is held for the whole call, making fn's validation and
// mutations one atomic unit with respect to every other operation.
func (r *AccountRepository) Transact(ctx context.Context, accountIDs []string, fn func(accounts map[string]*domain.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := make(map[string]*domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acct, ok := r.accts[id]; ok {
			cp := acct
			working[id] = &cp
		} else {
			working[id] = nil
		}
	}

	if err := fn(working); err != nil {
		return err
	}

	for id, acct := range working {
		if acct != nil {
			r.accts[id] = *acct
		}
	}
	return nil
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)
