package tokens

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage API tokens"
}

func (c *Command) Help() string {
	return `Usage: nanctl tokens <subcommand> [options] [args]

  This command groups subcommands for API tokens.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type CreateCommand struct {
	*base.Command

	flags           base.ClientFlags
	flagName        string
	flagRole        string
	flagDescription string
	flagExpireDays  int
}

func (c *CreateCommand) Synopsis() string {
	return "Create an API token"
}

func (c *CreateCommand) Help() string {
	return `Usage: nanctl tokens create [options]

  Creates an API token and prints its secret value. The value cannot be
  retrieved again.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tokens create", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(&c.flagName, "name", "", "(Required) Token name")
	f.StringVar(&c.flagRole, "role", "", "(Required) Token role, e.g. admin or server")
	f.StringVar(&c.flagDescription, "description", "", "Token description")
	f.IntVar(&c.flagExpireDays, "expire-days", 0, "Days until the token expires. Default: never")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	req := models.CreateApiTokenRequest{
		Name: c.flagName,
		Role: c.flagRole,
	}
	if c.flagDescription != "" {
		req.Description = models.Ptr(c.flagDescription)
	}
	if c.flagExpireDays != 0 {
		req.ExpireDays = models.Ptr(c.flagExpireDays)
	}
	if err := req.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid token: %v", err))
		return 1
	}

	client, err := c.Client(c.flags)
	if err != nil {
		return c.Fail(err)
	}
	defer client.Close()

	created, err := client.Tokens.Create(context.Background(), req)
	if err != nil {
		return c.Fail(err)
	}

	c.Log.Info("created API token", "id", created.TokenInfo.ID, "name", created.TokenInfo.Name)
	c.UI.Output(created.TokenValue)
	return 0
}
