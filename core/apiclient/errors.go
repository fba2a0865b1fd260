package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")
	ErrUnauthorized   = errors.New("apiclient: unauthorized")
	ErrDecodeResponse = errors.New("apiclient: failed to decode response")
)

// Error is a non-2xx API response.
type Error struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Is matches ErrUnauthorized for 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// StatusCodeOf returns the HTTP status of an API error, or 0.
func StatusCodeOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf returns the server-provided message carried by err, or fallback
// when there is none.
func MessageOf(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
