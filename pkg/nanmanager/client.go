package nanmanager

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/newnancity/nanmanager/internal/version"
	"github.com/newnancity/nanmanager/pkg/services"
	"github.com/newnancity/nanmanager/pkg/transport"
)

// Client is the entry point to the management API. Each field groups the
// calls for one resource; all of them share one pooled transport.
type Client struct {
	transport *transport.Client

	Players       *services.PlayerService
	Servers       *services.ServerService
	Monitor       *services.MonitorService
	Towns         *services.TownService
	Tokens        *services.TokenService
	IPs           *services.IPService
	PlayerServers *services.PlayerServerService
}

// Option adjusts the configuration built by New.
type Option func(*transport.Config)

// WithTimeout bounds each HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *transport.Config) { c.Timeout = d }
}

// WithRetry sets how many times connection failures and timeouts are retried
// and the base delay between attempts.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *transport.Config) {
		c.MaxRetries = maxRetries
		c.RetryDelay = delay
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *transport.Config) { c.UserAgent = ua }
}

// WithTLSVerify turns certificate verification on or off.
func WithTLSVerify(verify bool) Option {
	return func(c *transport.Config) { c.TLSVerify = &verify }
}

// WithPoolSize sets the connection pool limits. total caps idle pooled
// connections and perHost caps all connections, active or idle, to one host.
// net/http has no cap on active connections across hosts; since a Client
// talks to a single API host, perHost is the effective limit.
func WithPoolSize(total, perHost int) Option {
	return func(c *transport.Config) {
		c.PoolSize = total
		c.PoolSizePerHost = perHost
	}
}

// WithLogger sets the logger for request and retry logs.
func WithLogger(logger hclog.Logger) Option {
	return func(c *transport.Config) { c.Logger = logger }
}

// WithTracing traces outgoing requests with Datadog under serviceName.
func WithTracing(serviceName string) Option {
	return func(c *transport.Config) { c.TraceServiceName = serviceName }
}

// New creates a Client for the API at baseURL, authenticating with token.
// Both are required; a missing one fails with transport.ErrInvalidConfig.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" || token == "" {
		return nil, fmt.Errorf("%w: base URL and token are required", transport.ErrInvalidConfig)
	}

	cfg := transport.NewConfig(baseURL, token)
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig(cfg)
}

// NewFromConfig creates a Client from a complete configuration.
func NewFromConfig(cfg transport.Config) (*Client, error) {
	tc, err := transport.New(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(tc), nil
}

func newClient(tc *transport.Client) *Client {
	return &Client{
		transport:     tc,
		Players:       services.NewPlayerService(tc),
		Servers:       services.NewServerService(tc),
		Monitor:       services.NewMonitorService(tc),
		Towns:         services.NewTownService(tc),
		Tokens:        services.NewTokenService(tc),
		IPs:           services.NewIPService(tc),
		PlayerServers: services.NewPlayerServerService(tc),
	}
}

// Transport returns the underlying transport for calls the services do not
// cover.
func (c *Client) Transport() *transport.Client {
	return c.transport
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() transport.Config {
	return c.transport.Config()
}

// Close releases pooled connections. The Client cannot be used afterwards.
func (c *Client) Close() error {
	return c.transport.Close()
}

// With creates a Client from cfg, passes it to fn and closes it when fn
// returns or panics.
func With(cfg transport.Config, fn func(*Client) error) error {
	client, err := NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(client)
}

// Version returns the SDK version.
func Version() string {
	return version.Version
}
