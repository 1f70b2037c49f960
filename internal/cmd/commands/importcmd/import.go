package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/newnancity/nanmanager/internal/cmd/base"
	"github.com/newnancity/nanmanager/internal/importer"
)

type Command struct {
	*base.Command

	flags            base.ClientFlags
	flagTowns        string
	flagPlayers      string
	flagDryRun       bool
	flagBanReason    string
	flagTemporaryBan time.Duration
}

func (c *Command) Synopsis() string {
	return "Import towns and players from a legacy export"
}

func (c *Command) Help() string {
	return `Usage: nanctl import -towns <file> -players <file> [options]

  Imports towns and players exported from the legacy database. Towns are
  created first, then players are created in their towns, legacy bans are
  applied, and finally town leaders are set.

  Records that fail are reported at the end; the rest are still imported.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("import", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(&c.flagTowns, "towns", "", `(Required) Path to the towns export ({"towns": [...]})`)
	f.StringVar(&c.flagPlayers, "players", "", `(Required) Path to the players export ({"players": [...]})`)
	f.BoolVar(
		&c.flagDryRun, "dry-run", false,
		"Only validate and count records without making changes.",
	)
	f.StringVar(&c.flagBanReason, "ban-reason", importer.DefaultBanReason, "Reason recorded on imported bans")
	f.DurationVar(
		&c.flagTemporaryBan, "temporary-ban", importer.DefaultTemporaryBan,
		"Length given to legacy temporary bans",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagTowns == "" || c.flagPlayers == "" {
		ui.Error("towns and players flags are required")
		return 1
	}

	towns, err := importer.LoadTowns(c.Fs(), c.flagTowns)
	if err != nil {
		return c.Fail(err)
	}
	players, err := importer.LoadPlayers(c.Fs(), c.flagPlayers)
	if err != nil {
		return c.Fail(err)
	}
	ui.Info(fmt.Sprintf("Loaded %d towns and %d players", len(towns), len(players)))

	im := &importer.Importer{
		Logger:       logger.Named("import"),
		DryRun:       c.flagDryRun,
		BanReason:    c.flagBanReason,
		TemporaryBan: c.flagTemporaryBan,
	}
	if c.flagDryRun {
		ui.Warn("DRY RUN mode enabled - no changes will be made")
	} else {
		client, err := c.Client(c.flags)
		if err != nil {
			return c.Fail(err)
		}
		defer client.Close()

		im.Players = client.Players
		im.Towns = client.Towns
	}

	res, err := im.Run(context.Background(), towns, players)

	ui.Info(fmt.Sprintf(
		"Towns created: %d, players created: %d, players banned: %d, leaders set: %d",
		res.TownsCreated, res.PlayersCreated, res.PlayersBanned, res.LeadersSet,
	))
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			ui.Error(fmt.Sprintf("%d records failed:", merr.Len()))
			for _, e := range merr.Errors {
				ui.Error("  " + e.Error())
			}
			return 1
		}
		return c.Fail(err)
	}
	return 0
}
