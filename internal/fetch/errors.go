package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPayload is returned when the server answers with an empty body
	ErrEmptyPayload = errors.New("empty payload")

	// ErrPayloadTooLarge is returned when the body exceeds MaxPayloadBytes
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrUnsupportedEncoding is returned when the response uses a content
	// coding the transport cannot undo
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")

	// ErrUndecodable is returned when the payload is not a supported image
	ErrUndecodable = errors.New("payload is not a decodable image")
)

// StatusError represents a non-2xx HTTP response
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is()
func (e *StatusError) Is(target error) bool {
	_, ok := target.(*StatusError)
	return ok
}

// NewStatusError creates a new StatusError
func NewStatusError(url string, statusCode int) *StatusError {
	return &StatusError{URL: url, StatusCode: statusCode}
}
