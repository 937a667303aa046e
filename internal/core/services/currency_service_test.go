package services_test

import (
	"context"
	"testing"

	"github.com/peerpay/peer_payment_app/internal/apperrors"
	"github.com/peerpay/peer_payment_app/internal/core/domain"
	"github.com/peerpay/peer_payment_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCurrencies(t *testing.T) {
	service := services.NewCurrencyService()

	currencies, err := service.ListCurrencies(context.Background())
	require.NoError(t, err)
	require.Len(t, currencies, 4)

	assert.Equal(t, "USD", currencies[0].Code)
	assert.Equal(t, float64(1), currencies[0].Rate)
	assert.True(t, currencies[0].Base)

	for _, c := range currencies[1:] {
		assert.False(t, c.Base)
		assert.Greater(t, c.Rate, float64(0))
	}
}

func TestGetRate(t *testing.T) {
	service := services.NewCurrencyService()

	rate, err := service.GetRate(context.Background(), domain.Naira)
	require.NoError(t, err)
	assert.Equal(t, 411.57, rate)

	_, err = service.GetRate(context.Background(), domain.Currency("EUR"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}
