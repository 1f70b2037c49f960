package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/newnancity/nanmanager/pkg/transport"
)

const (
	// EnvConfigFile names the config file used when no -config flag is given.
	EnvConfigFile = "NANMANAGER_CONFIG"

	// EnvBaseURL overrides base_url.
	EnvBaseURL = "NANMANAGER_BASE_URL"

	// EnvToken overrides token.
	EnvToken = "NANMANAGER_TOKEN"
)

// Config is the nanctl configuration file.
//
//	base_url    = "https://manager-api.example.com"
//	token       = "..."
//	timeout     = "30s"
//	max_retries = 3
//	retry_delay = "1s"
//	tls_verify  = true
type Config struct {
	BaseURL string `hcl:"base_url,optional"`
	Token   string `hcl:"token,optional"`

	// Timeout and RetryDelay are Go duration strings, e.g. "30s".
	Timeout    string `hcl:"timeout,optional"`
	MaxRetries *int   `hcl:"max_retries,optional"`
	RetryDelay string `hcl:"retry_delay,optional"`

	TLSVerify        *bool  `hcl:"tls_verify,optional"`
	UserAgent        string `hcl:"user_agent,optional"`
	PoolSize         int    `hcl:"pool_size,optional"`
	PoolSizePerHost  int    `hcl:"pool_size_per_host,optional"`
	TraceServiceName string `hcl:"trace_service_name,optional"`

	// LogLevel is an hclog level name. Default: "info".
	LogLevel string `hcl:"log_level,optional"`
}

// Load reads the HCL file at path from fs. An empty path yields an empty
// Config, which environment overrides may still complete.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides the base URL and token from the environment. lookup is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvToken); ok && v != "" {
		c.Token = v
	}
}

// Validate checks the fields a transport configuration cannot be built
// without.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required.Error("is required (set base_url or "+EnvBaseURL+")")),
		validation.Field(&c.Token, validation.Required.Error("is required (set token or "+EnvToken+")")),
		validation.Field(&c.Timeout, validation.By(duration)),
		validation.Field(&c.RetryDelay, validation.By(duration)),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
	)
}

func duration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return errors.New("must be a duration such as \"30s\"")
	}
	return nil
}

// Transport converts c to a transport configuration. Fields left unset keep
// the transport defaults.
func (c Config) Transport(logger hclog.Logger) (transport.Config, error) {
	if err := c.Validate(); err != nil {
		return transport.Config{}, err
	}

	tc := transport.NewConfig(c.BaseURL, c.Token)
	tc.Logger = logger
	tc.TraceServiceName = c.TraceServiceName

	if c.Timeout != "" {
		tc.Timeout, _ = time.ParseDuration(c.Timeout)
	}
	if c.RetryDelay != "" {
		tc.RetryDelay, _ = time.ParseDuration(c.RetryDelay)
	}
	if c.MaxRetries != nil {
		tc.MaxRetries = *c.MaxRetries
	}
	if c.TLSVerify != nil {
		verify := *c.TLSVerify
		tc.TLSVerify = &verify
	}
	if c.UserAgent != "" {
		tc.UserAgent = c.UserAgent
	}
	if c.PoolSize > 0 {
		tc.PoolSize = c.PoolSize
	}
	if c.PoolSizePerHost > 0 {
		tc.PoolSizePerHost = c.PoolSizePerHost
	}

	return tc, nil
}

// Level returns the configured log level.
func (c Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}
