package services

import (
	"context"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
	"github.com/peerpay/peer_payment_app/internal/dto"
)

// CurrencyReaderSvc defines read operations over the static currency table
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all supported currencies with their rates.
	ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error)

	// GetRate retrieves the conversion factor of one currency relative to
	// the base currency.
	GetRate(ctx context.Context, code domain.Currency) (float64, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
// The table is immutable for the process lifetime, so there is no writer.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
