package dto

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"` // units per one base-currency unit
	Base bool    `json:"base"`
}
