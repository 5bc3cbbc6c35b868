// Package apierror defines the JSON error envelopes the API writes. Clients
// only ever see these shapes; internal error details stay in the logs.
package apierror

// APIError is the `{detail}` envelope used for every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError adds the per-field messages from DTO validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
