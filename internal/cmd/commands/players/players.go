package players

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/pkg/models"
	"github.com/newnancity/nanmanager/pkg/services"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect and moderate players"
}

func (c *Command) Help() string {
	return `Usage: nanctl players <subcommand> [options] [args]

  This command groups subcommands for managing players.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flags        base.ClientFlags
	flagPage     int
	flagPageSize int
	flagSearch   string
	flagTownID   int
	flagBanMode  string
}

func (c *ListCommand) Synopsis() string {
	return "List players"
}

func (c *ListCommand) Help() string {
	return `Usage: nanctl players list [options]

  Lists one page of players.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("players list", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.IntVar(&c.flagPage, "page", 1, "Page number, starting at 1")
	f.IntVar(&c.flagPageSize, "page-size", 20, "Players per page")
	f.StringVar(&c.flagSearch, "search", "", "Only list players whose name or contact matches")
	f.IntVar(&c.flagTownID, "town", 0, "Only list members of this town")
	f.StringVar(&c.flagBanMode, "ban-mode", "", "Only list players in this ban state (normal, temporary, permanent)")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	opts := &services.ListPlayersOptions{
		PageOptions: services.NewPageOptions(c.flagPage, c.flagPageSize),
	}
	if c.flagSearch != "" {
		opts.Search = models.Ptr(c.flagSearch)
	}
	if c.flagTownID > 0 {
		opts.TownID = models.Ptr(c.flagTownID)
	}
	if c.flagBanMode != "" {
		mode, err := models.ParseBanMode(c.flagBanMode)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		opts.BanMode = &mode
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	page, err := client.Players.List(context.Background(), opts)
	if err != nil {
		return c.Fail(err)
	}
	if err := c.Print(c.flags.Format, page); err != nil {
		return c.Fail(err)
	}
	return 0
}

type GetCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *GetCommand) Synopsis() string {
	return "Show a player"
}

func (c *GetCommand) Help() string {
	return `Usage: nanctl players get [options] <id>

  Shows one player by ID.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("players get", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, err := playerID(f.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	player, err := client.Players.Get(context.Background(), id)
	if err != nil {
		return c.Fail(err)
	}
	if err := c.Print(c.flags.Format, player); err != nil {
		return c.Fail(err)
	}
	return 0
}

type UnbanCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *UnbanCommand) Synopsis() string {
	return "Lift a player's ban"
}

func (c *UnbanCommand) Help() string {
	return `Usage: nanctl players unban [options] <id>

  Lifts any ban on the player.` + c.Flags().Help()
}

func (c *UnbanCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("players unban", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)
	return f
}

func (c *UnbanCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, err := playerID(f.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	if err := client.Players.Unban(context.Background(), id); err != nil {
		return c.Fail(err)
	}
	c.UI.Info(fmt.Sprintf("Player %d unbanned", id))
	return 0
}

func playerID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one player ID, got %d arguments", len(args))
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid player ID: %q", args[0])
	}
	return id, nil
}
