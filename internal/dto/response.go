package dto

// SuccessResponse is the envelope for successful calls. The wire shape is
// {status, message, data} with the HTTP status repeated in the body.
type SuccessResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed calls: {status, error}.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}
