package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/internal/cmd/commands/importcmd"
	"github.com/newnancity/nanmanager/internal/cmd/commands/ips"
	"github.com/newnancity/nanmanager/internal/cmd/commands/players"
	"github.com/newnancity/nanmanager/internal/cmd/commands/servers"
	"github.com/newnancity/nanmanager/internal/cmd/commands/tokens"
	"github.com/newnancity/nanmanager/internal/cmd/commands/version"
)

// Commands is the mapping of all available nanctl commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"import": func() (cli.Command, error) {
			return &importcmd.Command{Command: b}, nil
		},
		"ips": func() (cli.Command, error) {
			return &ips.Command{Command: b}, nil
		},
		"ips stats": func() (cli.Command, error) {
			return &ips.StatsCommand{Command: b}, nil
		},
		"players": func() (cli.Command, error) {
			return &players.Command{Command: b}, nil
		},
		"players ban": func() (cli.Command, error) {
			return &players.BanCommand{Command: b}, nil
		},
		"players get": func() (cli.Command, error) {
			return &players.GetCommand{Command: b}, nil
		},
		"players list": func() (cli.Command, error) {
			return &players.ListCommand{Command: b}, nil
		},
		"players unban": func() (cli.Command, error) {
			return &players.UnbanCommand{Command: b}, nil
		},
		"servers": func() (cli.Command, error) {
			return &servers.Command{Command: b}, nil
		},
		"servers list": func() (cli.Command, error) {
			return &servers.ListCommand{Command: b}, nil
		},
		"tokens": func() (cli.Command, error) {
			return &tokens.Command{Command: b}, nil
		},
		"tokens create": func() (cli.Command, error) {
			return &tokens.CreateCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
