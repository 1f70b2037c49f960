package base

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/newnancity/nanmanager/internal/config"
	"github.com/newnancity/nanmanager/pkg/nanmanager"
)

// Command holds what every nanctl command shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is where config and import files are read from. Nil means the OS
	// filesystem.
	FS afero.Fs

	// LookupEnv reads environment overrides. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Fs returns the filesystem commands read from.
func (c *Command) Fs() afero.Fs {
	if c.FS == nil {
		return afero.NewOsFs()
	}
	return c.FS
}

func (c *Command) lookupEnv(key string) (string, bool) {
	if c.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return c.LookupEnv(key)
}

// ClientFlags are the flags of every command that talks to the API.
type ClientFlags struct {
	Config string
	Format string
}

// AddClientFlags registers -config and -format on f.
func AddClientFlags(f *FlagSet, cf *ClientFlags) {
	f.StringVar(
		&cf.Config, "config", "",
		fmt.Sprintf("[%s] Path to the nanctl HCL config file", config.EnvConfigFile),
	)
	f.StringVar(
		&cf.Format, "format", "json",
		"Output format (json, yaml)",
	)
}

// LoadConfig reads the config file named by the -config flag or
// NANMANAGER_CONFIG and applies environment overrides.
func (c *Command) LoadConfig(cf ClientFlags) (*config.Config, error) {
	path := cf.Config
	if val, ok := c.lookupEnv(config.EnvConfigFile); ok && path == "" {
		path = val
	}

	cfg, err := config.Load(c.Fs(), path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(c.lookupEnv)
	return cfg, nil
}

// Client builds an API client from the config file and environment.
func (c *Command) Client(cf ClientFlags) (*nanmanager.Client, error) {
	cfg, err := c.LoadConfig(cf)
	if err != nil {
		return nil, err
	}

	logger := c.Log
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger.SetLevel(cfg.Level())

	tc, err := cfg.Transport(logger.Named("transport"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return nanmanager.NewFromConfig(tc)
}

// Print writes v to the UI in the requested format.
func (c *Command) Print(format string, v any) error {
	out, err := Render(format, v)
	if err != nil {
		return err
	}
	c.UI.Output(out)
	return nil
}

// Render encodes v as indented JSON or as YAML. YAML keys follow the JSON
// field names.
func Render(format string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case "", "json":
		return string(data), nil
	case "yaml":
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", format)
	}
}

// Fail reports err and returns the exit code for a failed command.
func (c *Command) Fail(err error) int {
	c.UI.Error(err.Error())
	return 1
}
