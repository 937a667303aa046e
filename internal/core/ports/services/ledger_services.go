package services

import (
	"context"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
	"github.com/peerpay/peer_payment_app/internal/dto"
)

// LedgerReaderSvc defines read operations on the ledger
type LedgerReaderSvc interface {
	// GetBalance retrieves the current snapshot of an account.
	GetBalance(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves snapshots of every account in the ledger.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// LedgerWriterSvc defines operations that mutate ledger state
type LedgerWriterSvc interface {
	// CreateAccount registers a new account with a zero balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// Deposit credits amount to the identified account.
	Deposit(ctx context.Context, accountID string, amount float64) (*domain.Account, error)

	// Transfer debits the sender by amount and credits the receiver by the
	// converted amount as one atomic unit. Returns the sender's
	// post-transfer state.
	Transfer(ctx context.Context, senderID, receiverID string, amount float64) (*domain.Account, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
