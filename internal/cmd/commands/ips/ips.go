package ips

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/newnancity/nanmanager/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect player IP addresses"
}

func (c *Command) Help() string {
	return `Usage: nanctl ips <subcommand> [options] [args]

  This command groups subcommands for player IP addresses.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type StatsCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *StatsCommand) Synopsis() string {
	return "Show IP address statistics"
}

func (c *StatsCommand) Help() string {
	return `Usage: nanctl ips stats [options]

  Shows counts of known, banned and risky IP addresses.` + c.Flags().Help()
}

func (c *StatsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("ips stats", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)
	return f
}

func (c *StatsCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	stats, err := client.IPs.Statistics(context.Background())
	if err != nil {
		return c.Fail(err)
	}
	if err := c.Print(c.flags.Format, stats); err != nil {
		return c.Fail(err)
	}
	return 0
}
