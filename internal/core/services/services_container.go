package services

import (
	portsrepo "github.com/peerpay/peer_payment_app/internal/core/ports/repositories"
	portssvc "github.com/peerpay/peer_payment_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()
	container.Ledger = NewLedgerService(repos.AccountRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
)
