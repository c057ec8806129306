package paypal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AuthError means the provider rejected the client-credentials exchange.
// Body holds the provider's raw error response.
type AuthError struct {
	StatusCode int
	Body       []byte
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token error (status %d): %s", e.StatusCode, string(e.Body))
}

// APIError means the provider rejected an order-creation or capture call.
// Body is the provider's JSON error payload, kept unmodified so callers can
// inspect provider-specific codes.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, string(e.Body))
}

func IsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
