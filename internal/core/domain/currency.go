package domain

import (
	"fmt"

	"github.com/peerpay/peer_payment_app/internal/apperrors"
)

// Currency identifies one of the supported denominations.
type Currency string

const (
	USD   Currency = "USD"
	Naira Currency = "NAIRA"
	Yen   Currency = "YEN"
	Yuan  Currency = "YUAN"
)

// BaseCurrency is the anchor of the rate table; its rate is defined as 1.
const BaseCurrency = USD

// rates maps each supported currency to its conversion factor relative to
// one unit of the base currency. Fixed for the process lifetime.
var rates = map[Currency]float64{
	USD:   1,
	Naira: 411.57,
	Yen:   109.47,
	Yuan:  6.46,
}

// SupportedCurrencies returns the fixed set of currency codes, base first.
func SupportedCurrencies() []Currency {
	return []Currency{USD, Naira, Yen, Yuan}
}

// IsSupported reports whether code names a currency in the fixed set.
func IsSupported(code Currency) bool {
	_, ok := rates[code]
	return ok
}

// Rate returns the conversion factor of c relative to the base currency.
func Rate(c Currency) (float64, error) {
	r, ok := rates[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, c)
	}
	return r, nil
}

// ConvertedCredit computes the amount credited to the receiver when amount is
// sent from an account denominated in from to one denominated in to.
//
// The rule is two-tier, anchored on the base currency: a base-currency sender
// credits amount scaled up by the receiver's rate, any other sender credits
// amount scaled down by its own rate. The debit side is never converted.
func ConvertedCredit(amount float64, from, to Currency) (float64, error) {
	if from == BaseCurrency {
		toRate, err := Rate(to)
		if err != nil {
			return 0, err
		}
		return amount * toRate, nil
	}
	fromRate, err := Rate(from)
	if err != nil {
		return 0, err
	}
	return amount / fromRate, nil
}
