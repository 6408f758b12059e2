package telegram

import "fmt"

// ConfigError is returned when a required credential is missing.
// It is detected before any request is made.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// APIError is returned when the Bot API answers with anything but 200 OK
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error (status %d): %s", e.StatusCode, e.Body)
}

// TransportError is returned when the request could not complete
// (timeout, DNS, refused connection, truncated body).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sending request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
