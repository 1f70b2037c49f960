package transport

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"

	"github.com/newnancity/nanmanager/internal/version"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultMaxRetries      = 3
	defaultRetryDelay      = 1 * time.Second
	defaultPoolSize        = 100
	defaultPoolSizePerHost = 30
)

// Config contains the connection settings for a Client. A Client copies its
// Config on construction, so later changes to the value passed in have no
// effect on it.
type Config struct {
	// BaseURL is the base URL of the management API.
	// Example: "https://manager-api.example.com"
	BaseURL string `json:"base_url"`

	// Token is the API token sent as a bearer credential.
	Token string `json:"-"` // Never marshal the token.

	// Timeout bounds a single HTTP attempt, including reading the body.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// UserAgent is sent in the User-Agent header.
	UserAgent string `json:"user_agent,omitempty"`

	// MaxRetries is the number of additional attempts made after a
	// connection-level failure or timeout. Zero disables retries.
	MaxRetries int `json:"max_retries"`

	// RetryDelay is the base delay; attempt n waits RetryDelay * 2^n.
	RetryDelay time.Duration `json:"retry_delay"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tls_verify,omitempty"`

	// PoolSize caps idle pooled connections across all hosts. Active
	// connections are capped per host only, by PoolSizePerHost.
	// Default: 100
	PoolSize int `json:"pool_size,omitempty"`

	// PoolSizePerHost caps connections to a single host.
	// Default: 30
	PoolSizePerHost int `json:"pool_size_per_host,omitempty"`

	// TraceServiceName enables Datadog tracing of outgoing requests under
	// this service name when non-empty.
	TraceServiceName string `json:"trace_service_name,omitempty"`

	// Logger receives request and retry logs. Default: null logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with the default timeout, retry and pool
// settings and no base URL or token.
func DefaultConfig() Config {
	tlsVerify := true
	return Config{
		Timeout:         defaultTimeout,
		UserAgent:       version.UserAgent(),
		MaxRetries:      defaultMaxRetries,
		RetryDelay:      defaultRetryDelay,
		TLSVerify:       &tlsVerify,
		PoolSize:        defaultPoolSize,
		PoolSizePerHost: defaultPoolSizePerHost,
	}
}

// NewConfig returns DefaultConfig with the given base URL and token.
func NewConfig(baseURL, token string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Token = token
	return cfg
}

// withDefaults fills unset fields. MaxRetries and RetryDelay are left alone
// because zero is a meaningful value for both.
func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.TLSVerify == nil {
		tlsVerify := true
		c.TLSVerify = &tlsVerify
	}
	if c.PoolSize == 0 {
		c.PoolSize = defaultPoolSize
	}
	if c.PoolSizePerHost == 0 {
		c.PoolSizePerHost = defaultPoolSizePerHost
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	return c
}

// Validate checks if the configuration is valid. Every returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.PoolSize, validation.Min(1)),
		validation.Field(&c.PoolSizePerHost, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	if c.TLSVerify != nil {
		v := *c.TLSVerify
		c.TLSVerify = &v
	}
	return c
}

// NewHTTPClient creates the pooled HTTP client used by a Client.
func (c Config) NewHTTPClient() *http.Client {
	c = c.withDefaults()

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        c.PoolSize,
		MaxIdleConnsPerHost: c.PoolSizePerHost,
		MaxConnsPerHost:     c.PoolSizePerHost,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	if !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	var rt http.RoundTripper = transport
	if c.TraceServiceName != "" {
		rt = httptrace.WrapRoundTripper(rt, httptrace.RTWithServiceName(c.TraceServiceName))
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: rt,
	}
}
