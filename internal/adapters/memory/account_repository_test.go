package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/peerpay/peer_payment_app/internal/adapters/memory"
	"github.com/peerpay/peer_payment_app/internal/apperrors"
	"github.com/peerpay/peer_payment_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(amount float64) domain.Account {
	return domain.Account{
		AccountID: uuid.NewString(),
		Username:  "User A",
		Email:     "userA@gmail.com",
		Currency:  domain.USD,
		Amount:    amount,
	}
}

func TestSaveAndFindAccount(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	acct := newAccount(0)

	require.NoError(t, repo.SaveAccount(ctx, acct))

	found, err := repo.FindAccountByID(ctx, acct.AccountID)
	require.NoError(t, err)
	assert.Equal(t, acct, *found)
}

func TestSaveAccount_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	acct := newAccount(0)

	require.NoError(t, repo.SaveAccount(ctx, acct))
	err := repo.SaveAccount(ctx, acct)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFindAccountByID_NotFound(t *testing.T) {
	repo := memory.NewAccountRepository()
	_, err := repo.FindAccountByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestFindAccountByID_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	acct := newAccount(10)
	require.NoError(t, repo.SaveAccount(ctx, acct))

	found, err := repo.FindAccountByID(ctx, acct.AccountID)
	require.NoError(t, err)
	found.Amount = 999

	again, err := repo.FindAccountByID(ctx, acct.AccountID)
	require.NoError(t, err)
	assert.Equal(t, float64(10), again.Amount)
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	require.NoError(t, repo.SaveAccount(ctx, newAccount(0)))
	require.NoError(t, repo.SaveAccount(ctx, newAccount(5)))

	accounts, err = repo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestTransact_MissingIDsAreNil(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	acct := newAccount(0)
	require.NoError(t, repo.SaveAccount(ctx, acct))

	err := repo.Transact(ctx, []string{acct.AccountID, "missing"}, func(accounts map[string]*domain.Account) error {
		assert.NotNil(t, accounts[acct.AccountID])
		assert.Nil(t, accounts["missing"])
		return nil
	})
	require.NoError(t, err)
}

func TestTransact_ErrorDiscardsMutations(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	acct := newAccount(20)
	require.NoError(t, repo.SaveAccount(ctx, acct))

	err := repo.Transact(ctx, []string{acct.AccountID}, func(accounts map[string]*domain.Account) error {
		accounts[acct.AccountID].Amount = 0
		return apperrors.ErrInsufficientFunds
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	found, ferr := repo.FindAccountByID(ctx, acct.AccountID)
	require.NoError(t, ferr)
	assert.Equal(t, float64(20), found.Amount)
}

func TestTransact_CommitsAllMutations(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	a := newAccount(20)
	b := newAccount(0)
	require.NoError(t, repo.SaveAccount(ctx, a))
	require.NoError(t, repo.SaveAccount(ctx, b))

	err := repo.Transact(ctx, []string{a.AccountID, b.AccountID}, func(accounts map[string]*domain.Account) error {
		accounts[a.AccountID].Amount -= 5
		accounts[b.AccountID].Amount += 5
		return nil
	})
	require.NoError(t, err)

	fa, _ := repo.FindAccountByID(ctx, a.AccountID)
	fb, _ := repo.FindAccountByID(ctx, b.AccountID)
	assert.Equal(t, float64(15), fa.Amount)
	assert.Equal(t, float64(5), fb.Amount)
}

// Concurrent single-unit transfers between the same pair of accounts must not
// lose updates in either direction.
func TestTransact_ConcurrentTransfers(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	const n = 100

	a := newAccount(n)
	b := newAccount(0)
	require.NoError(t, repo.SaveAccount(ctx, a))
	require.NoError(t, repo.SaveAccount(ctx, b))

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Transact(ctx, []string{a.AccountID, b.AccountID}, func(accounts map[string]*domain.Account) error {
				accounts[a.AccountID].Amount -= 1
				accounts[b.AccountID].Amount += 1
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	fa, _ := repo.FindAccountByID(ctx, a.AccountID)
	fb, _ := repo.FindAccountByID(ctx, b.AccountID)
	assert.Equal(t, float64(0), fa.Amount)
	assert.Equal(t, float64(n), fb.Amount)
}
