package transport

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig is returned when a client is constructed from an
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnection is matched by ConnectionError.
	ErrConnection = errors.New("connection error")

	// ErrTimeout is matched by TimeoutError.
	ErrTimeout = errors.New("request timeout")

	// ErrDecode is matched by DecodeError.
	ErrDecode = errors.New("failed to decode response")

	// ErrClientClosed is returned for calls made after Close.
	ErrClientClosed = errors.New("client is closed")
)

// APIError is a business error decoded from a response envelope whose code
// is non-zero. It is never retried.
type APIError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Details   string `json:"details,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d: %s", e.Code, e.Message)
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (Request ID: %s)", e.RequestID)
	}
	if e.Details != "" {
		msg += " - Details: " + e.Details
	}
	return msg
}

// HTTPError is a non-2xx response whose body is not an error envelope.
// It is never retried.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// statusMessages holds the messages for well-known failure statuses.
var statusMessages = map[int]string{
	http.StatusUnauthorized:        "Unauthorized: Invalid or missing API token",
	http.StatusForbidden:           "Forbidden: Insufficient permissions",
	http.StatusNotFound:            "Not found: The requested resource does not exist",
	http.StatusTooManyRequests:     "Too many requests: Rate limit exceeded",
	http.StatusInternalServerError: "Internal server error",
	http.StatusBadGateway:          "Bad gateway",
	http.StatusServiceUnavailable:  "Service unavailable",
	http.StatusGatewayTimeout:      "Gateway timeout",
}

func newHTTPError(statusCode int, status, url string) *HTTPError {
	reason := http.StatusText(statusCode)
	if len(status) > 4 {
		// Status is "404 Not Found"; keep the server's reason phrase.
		reason = status[4:]
	}

	msg, ok := statusMessages[statusCode]
	if !ok {
		msg = fmt.Sprintf("HTTP %d: %s", statusCode, reason)
	}

	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Message:    msg,
		URL:        url,
	}
}

// ConnectionError is a network-level failure that persisted through every
// retry.
type ConnectionError struct {
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// TimeoutError is a deadline that was exceeded on every attempt, or a caller
// deadline that expired while retrying.
type TimeoutError struct {
	Attempts int
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// DecodeError is a response body that is not valid JSON or does not fit the
// requested shape. It is never retried.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Error wraps any other failure with the step that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsHTTPError returns the HTTPError in err's chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
