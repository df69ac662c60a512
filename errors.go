package spotify

import (
	"errors"
	"fmt"
)

var (
	// Transport failures: network errors, unreadable response bodies.
	ErrTransport = fmt.Errorf("transport error")
	// ErrAPI is matched by every [*APIError].
	ErrAPI = fmt.Errorf("spotify API error")
	// ErrMalformedResponse is matched by every [*MalformedResponseError].
	ErrMalformedResponse = fmt.Errorf("malformed response")
	// ErrOAuth is matched by every [*OAuthError].
	ErrOAuth = fmt.Errorf("oauth error")

	// Authentication errors
	ErrInvalidStateParameter = fmt.Errorf("invalid state parameter")
	ErrExpiredToken          = fmt.Errorf("access token expired")
	ErrRefreshUnavailable    = fmt.Errorf("no refresh token available")
)

// APIError is the error envelope returned by the Web API for 4xx and 5xx responses.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("spotify: %d %s (%s)", e.Status, e.Message, e.Reason)
	}
	return fmt.Sprintf("spotify: %d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// MalformedResponseError reports a body that could not be decoded: a success body that does not match the
// result type, or an error status whose body is not the JSON error envelope.
type MalformedResponseError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%v: status %d: %v", ErrMalformedResponse, e.Status, e.Err)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// OAuthError wraps a failure reported by the token endpoint or the OAuth adapter.
type OAuthError struct {
	Code        string
	Description string
	Err         error
}

func (e *OAuthError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("%v: %s: %s", ErrOAuth, e.Code, e.Description)
	case e.Code != "":
		return fmt.Sprintf("%v: %s", ErrOAuth, e.Code)
	default:
		return fmt.Sprintf("%v: %v", ErrOAuth, e.Err)
	}
}

func (e *OAuthError) Is(target error) bool {
	return target == ErrOAuth
}

func (e *OAuthError) Unwrap() error {
	return e.Err
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// AsAPIError reports whether err carries an [*APIError] and returns it.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
