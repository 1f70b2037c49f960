package servers

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/pkg/models"
	"github.com/newnancity/nanmanager/pkg/services"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect registered game servers"
}

func (c *Command) Help() string {
	return `Usage: nanctl servers <subcommand> [options] [args]

  This command groups subcommands for registered game servers.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flags          base.ClientFlags
	flagPage       int
	flagPageSize   int
	flagSearch     string
	flagOnlineOnly bool
}

func (c *ListCommand) Synopsis() string {
	return "List servers"
}

func (c *ListCommand) Help() string {
	return `Usage: nanctl servers list [options]

  Lists one page of registered servers.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("servers list", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.IntVar(&c.flagPage, "page", 1, "Page number, starting at 1")
	f.IntVar(&c.flagPageSize, "page-size", 20, "Servers per page")
	f.StringVar(&c.flagSearch, "search", "", "Only list servers whose name or address matches")
	f.BoolVar(&c.flagOnlineOnly, "online", false, "Only list servers that are online")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	opts := &services.ListServersOptions{
		PageOptions: services.NewPageOptions(c.flagPage, c.flagPageSize),
	}
	if c.flagSearch != "" {
		opts.Search = models.Ptr(c.flagSearch)
	}
	if c.flagOnlineOnly {
		opts.OnlineOnly = models.Ptr(true)
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	page, err := client.Servers.List(context.Background(), opts)
	if err != nil {
		return c.Fail(err)
	}
	if err := c.Print(c.flags.Format, page); err != nil {
		return c.Fail(err)
	}
	return 0
}
