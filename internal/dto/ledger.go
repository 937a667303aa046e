package dto

// DepositRequest defines the body of a deposit call. The amount must be
// present and positive; absence is a validation failure, not a zero deposit.
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// TransferRequest defines the body of a send-money call. Sender and receiver
// identifiers travel in the URL, only the amount is in the body.
type TransferRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
