package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks,
// including required fields missing from the request.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAccountNotFound indicates that the referenced account does not exist in the store.
var ErrAccountNotFound = errors.New("user not found")

// ErrSenderNotFound indicates that the sending side of a transfer does not exist.
var ErrSenderNotFound = errors.New("sender not found")

// ErrReceiverNotFound indicates that the receiving side of a transfer does not exist.
var ErrReceiverNotFound = errors.New("receiver not found")

// ErrInsufficientFunds indicates a transfer amount greater than the sender's current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnknownCurrency indicates a currency code outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency")
