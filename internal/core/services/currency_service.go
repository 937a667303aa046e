package services

import (
	"context"

	"github.com/peerpay/peer_payment_app/internal/core/domain"
	"github.com/peerpay/peer_payment_app/internal/dto"
)

// currencyService exposes the static rate table to the gateway.
type currencyService struct{}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() *currencyService {
	return &currencyService{}
}

// ListCurrencies retrieves all supported currencies with their rates
// relative to the base currency.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	codes := domain.SupportedCurrencies()
	out := make([]dto.CurrencyResponse, 0, len(codes))
	for _, code := range codes {
		rate, err := domain.Rate(code)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CurrencyResponse{
			Code: string(code),
			Rate: rate,
			Base: code == domain.BaseCurrency,
		})
	}
	return out, nil
}

// GetRate retrieves the conversion factor of code relative to the base
// currency, failing for codes outside the fixed set.
func (s *currencyService) GetRate(ctx context.Context, code domain.Currency) (float64, error) {
	return domain.Rate(code)
}
