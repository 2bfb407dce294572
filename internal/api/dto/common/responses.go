package common

// MessageResponse is a simple message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetail carries a truncated diagnostic for server-side failures
type ErrorDetail struct {
	Detail string `json:"detail"`
}
