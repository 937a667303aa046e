package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peerpay/peer_payment_app/internal/apperrors"
	"github.com/peerpay/peer_payment_app/internal/core/domain"
	portsrepo "github.com/peerpay/peer_payment_app/internal/core/ports/repositories"
	"github.com/peerpay/peer_payment_app/internal/dto"
	"github.com/peerpay/peer_payment_app/internal/middleware"
)

// ledgerService implements the core ledger operations on top of the
// account repository.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new ledger service backed by repo.
func NewLedgerService(repo portsrepo.AccountRepositoryFacade) *ledgerService {
	return &ledgerService{accountRepo: repo}
}

// CreateAccount registers a new account with a fresh identifier and a zero
// balance. Field presence is enforced by DTO binding at the boundary; the
// currency code is re-checked here against the fixed rate table.
func (s *ledgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency := domain.Currency(req.Currency)
	if _, err := domain.Rate(currency); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Currency:  currency,
		Amount:    0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created successfully in service", slog.String("account_id", account.AccountID), slog.String("currency", req.Currency))
	return &account, nil
}

// Deposit credits amount to the identified account and returns its
// post-deposit state. The read-modify-write runs inside one store
// transaction so concurrent deposits never lose an update.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, amount float64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var updated domain.Account
	err := s.accountRepo.Transact(ctx, []string{accountID}, func(accounts map[string]*domain.Account) error {
		account := accounts[accountID]
		if account == nil {
			return apperrors.ErrAccountNotFound
		}
		account.Amount += amount
		account.LastUpdatedAt = time.Now()
		updated = *account
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			logger.Error("Failed to apply deposit", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Deposit applied", slog.String("account_id", accountID), slog.Float64("amount", amount))
	return &updated, nil
}

// Transfer debits the sender by the literal amount and credits the receiver
// by the converted amount as a single atomic unit, returning the sender's
// post-transfer state.
//
// Validation precedence inside the transaction: sender existence, then
// receiver existence, then the funds check. The funds check compares the raw
// requested amount against the sender's balance before any conversion.
func (s *ledgerService) Transfer(ctx context.Context, senderID, receiverID string, amount float64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if senderID == receiverID {
		return nil, fmt.Errorf("%w: sender and receiver cannot be the same account", apperrors.ErrValidation)
	}

	var updatedSender domain.Account
	err := s.accountRepo.Transact(ctx, []string{senderID, receiverID}, func(accounts map[string]*domain.Account) error {
		sender := accounts[senderID]
		if sender == nil {
			return apperrors.ErrSenderNotFound
		}
		receiver := accounts[receiverID]
		if receiver == nil {
			return apperrors.ErrReceiverNotFound
		}
		if amount > sender.Amount {
			return apperrors.ErrInsufficientFunds
		}

		credit, err := domain.ConvertedCredit(amount, sender.Currency, receiver.Currency)
		if err != nil {
			return err
		}

		now := time.Now()
		sender.Amount -= amount
		sender.LastUpdatedAt = now
		receiver.Amount += credit
		receiver.LastUpdatedAt = now
		updatedSender = *sender
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrSenderNotFound) &&
			!errors.Is(err, apperrors.ErrReceiverNotFound) &&
			!errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Failed to apply transfer", slog.String("error", err.Error()), slog.String("sender_id", senderID), slog.String("receiver_id", receiverID))
		}
		return nil, err
	}

	logger.Info("Transfer applied", slog.String("sender_id", senderID), slog.String("receiver_id", receiverID), slog.Float64("amount", amount))
	return &updatedSender, nil
}

// ListAccounts retrieves snapshots of every account in the ledger.
func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	logger.Debug("Accounts listed successfully from service", slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetBalance retrieves the current snapshot of an account.
func (s *ledgerService) GetBalance(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	logger.Debug("Account retrieved successfully from service", slog.String("account_id", account.AccountID))
	return account, nil
}
