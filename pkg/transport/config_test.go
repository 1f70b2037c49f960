package transport

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, 100, cfg.PoolSize)
	assert.Equal(t, 30, cfg.PoolSizePerHost)
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
	assert.Equal(t, "NewNanManager-Go-SDK/1.0.0", cfg.UserAgent)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "base URL without scheme",
			mutate:  func(c *Config) { c.BaseURL = "manager.example.com" },
			wantErr: "http or https",
		},
		{
			name:    "base URL with other scheme",
			mutate:  func(c *Config) { c.BaseURL = "ftp://manager.example.com" },
			wantErr: "http or https",
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Token = "" },
			wantErr: "Token",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: "timeout",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.MaxRetries = -1 },
			wantErr: "max_retries",
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.RetryDelay = -time.Second },
			wantErr: "retry_delay",
		},
		{
			name:   "zero retries and delay",
			mutate: func(c *Config) { c.MaxRetries = 0; c.RetryDelay = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("https://manager.example.com", "secret")
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{BaseURL: "https://manager.example.com"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_KeepsZeroRetries(t *testing.T) {
	cfg := NewConfig("https://manager.example.com", "secret")
	cfg.MaxRetries = 0
	cfg.RetryDelay = 0
	cfg.Timeout = 0

	client, err := New(cfg)
	require.NoError(t, err)
	defer client.Close()

	got := client.Config()
	assert.Equal(t, 0, got.MaxRetries)
	assert.Equal(t, time.Duration(0), got.RetryDelay)
	assert.Equal(t, 30*time.Second, got.Timeout)
}

func TestConfig_TokenNotMarshaled(t *testing.T) {
	data, err := json.Marshal(NewConfig("https://manager.example.com", "secret"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"base_url":"https://manager.example.com"`)
}

func TestConfig_NewHTTPClient(t *testing.T) {
	cfg := NewConfig("https://manager.example.com", "secret")
	cfg.Timeout = 5 * time.Second

	hc := cfg.NewHTTPClient()
	assert.Equal(t, 5*time.Second, hc.Timeout)

	tr, ok := hc.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 100, tr.MaxIdleConns)
	assert.Equal(t, 30, tr.MaxIdleConnsPerHost)
	assert.Equal(t, 30, tr.MaxConnsPerHost, "active connections to the API host are capped")
	assert.Nil(t, tr.TLSClientConfig)

	insecure := false
	cfg.TLSVerify = &insecure
	tr = cfg.NewHTTPClient().Transport.(*http.Transport)
	require.NotNil(t, tr.TLSClientConfig)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestConfig_NewHTTPClient_Traced(t *testing.T) {
	cfg := NewConfig("https://manager.example.com", "secret")
	cfg.TraceServiceName = "nanmanager-client"

	hc := cfg.NewHTTPClient()
	_, plain := hc.Transport.(*http.Transport)
	assert.False(t, plain)
}

func TestConfig_Clone(t *testing.T) {
	cfg := NewConfig("https://manager.example.com", "secret")
	clone := cfg.Clone()

	*clone.TLSVerify = false
	assert.True(t, *cfg.TLSVerify)
}
