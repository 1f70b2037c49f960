package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client sends requests to the management API. It owns one pooled HTTP
// client and is safe for concurrent use; calls are independent and are not
// serialized.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     hclog.Logger
	closed     atomic.Bool

	// newTimer, when set, supplies the timer used between retries.
	newTimer func() backoff.Timer
}

// New validates cfg and creates a Client with a pooled HTTP client built
// from it.
func New(cfg Config) (*Client, error) {
	return NewWithHTTPClient(cfg, nil)
}

// NewWithHTTPClient creates a Client that sends requests through httpClient.
// A nil httpClient gets one built from cfg.
func NewWithHTTPClient(cfg Config, httpClient *http.Client) (*Client, error) {
	cfg = cfg.Clone().withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = cfg.NewHTTPClient()
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.config.Clone()
}

// Close releases pooled connections. Calls made after Close fail with
// ErrClientClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.httpClient.CloseIdleConnections()
	return nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// response is what a successful attempt read off the wire.
type response struct {
	statusCode int
	status     string
	body       []byte
}

// attemptError is an attempt that failed before any response arrived.
// These are the only failures that are retried.
type attemptError struct {
	timeout bool
	err     error
}

func (e *attemptError) Error() string { return e.err.Error() }

func (e *attemptError) Unwrap() error { return e.err }

func isAttemptError(err error) bool {
	var ae *attemptError
	return errors.As(err, &ae)
}

// Do sends one API call and decodes its result into out.
//
// query is encoded with EncodeQuery. body, when non-nil, is sent as JSON;
// fields the caller left absent should be tagged omitempty so they are not
// sent. out may be nil to discard the payload, a *map[string]any or
// *json.RawMessage for the raw payload, or a pointer to a typed result.
//
// Only failures that happen before a response arrives are retried. Any HTTP
// response, including 4xx and 5xx, is final.
func (c *Client) Do(ctx context.Context, method, path string, query, body, out any) error {
	op := method + " " + path
	if c.closed.Load() {
		return &Error{Op: op, Err: ErrClientClosed}
	}

	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return &Error{Op: "build request", Err: err}
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return &Error{Op: "marshal request body", Err: err}
		}
	}

	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "path", path, "request_id", requestID)

	var (
		attempts int
		resp     response
	)
	policy := RetryPolicy{
		MaxRetries: c.config.MaxRetries,
		BaseDelay:  c.config.RetryDelay,
		Retryable:  isAttemptError,
		Notify: func(err error, delay time.Duration) {
			logger.Warn("request failed, retrying",
				"attempt", attempts,
				"delay", delay,
				"error", err,
			)
		},
	}
	if c.newTimer != nil {
		policy.Timer = c.newTimer()
	}

	err = Retry(ctx, policy, func() error {
		attempts++
		logger.Debug("sending request", "attempt", attempts, "body_bytes", len(payload))

		r, err := c.send(ctx, method, endpoint, payload, requestID)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return classifyFailure(op, attempts, err)
	}

	logger.Debug("received response", "status", resp.statusCode, "body_bytes", len(resp.body))

	return decodeResponse(resp, endpoint, out)
}

// send performs one attempt.
func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, requestID string) (response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return response{}, &Error{Op: "create request", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("X-API-Token", c.config.Token)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The caller's context ended; retrying cannot help.
			return response{}, ctxErr
		}
		return response{}, &attemptError{timeout: isTimeout(err), err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return response{}, &Error{Op: "read response", Err: err}
	}

	return response{
		statusCode: httpResp.StatusCode,
		status:     httpResp.Status,
		body:       data,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyFailure maps the error left after retrying onto the failure
// taxonomy.
func classifyFailure(op string, attempts int, err error) error {
	var ae *attemptError
	switch {
	case errors.As(err, &ae) && ae.timeout:
		return &TimeoutError{Attempts: attempts, Err: ae.err}
	case errors.As(err, &ae):
		return &ConnectionError{Attempts: attempts, Err: ae.err}
	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{Attempts: attempts, Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Op: op, Err: err}
	default:
		return err
	}
}

// decodeResponse turns a response into out or a typed failure.
func decodeResponse(resp response, endpoint string, out any) error {
	if resp.statusCode < 200 || resp.statusCode > 299 {
		if apiErr, ok := decodeErrorEnvelope(resp.statusCode, resp.body); ok {
			return apiErr
		}
		return newHTTPError(resp.statusCode, resp.status, endpoint)
	}

	body, err := parseResponseBody(resp.body)
	if err != nil {
		return err
	}
	if body.envelope != nil && body.envelope.Code != 0 {
		return body.envelope.apiError(resp.statusCode)
	}

	payload := body.payload()
	if out == nil || !hasPayload(payload) {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Body: resp.body, Err: err}
	}
	return nil
}

// buildURL joins path onto the base URL and appends the encoded query.
func (c *Client) buildURL(path string, query any) (string, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	values, err := EncodeQuery(query)
	if err != nil {
		return "", err
	}
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}
	return endpoint, nil
}
