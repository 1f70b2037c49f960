// Package importer migrates towns and players exported from the legacy
// database into the management API.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/newnancity/nanmanager/pkg/models"
)

// DefaultBanReason is recorded on players that were banned in the legacy
// database, which kept no reason.
const DefaultBanReason = "imported ban"

// DefaultTemporaryBan is applied to legacy temporary bans, which kept no
// expiry.
const DefaultTemporaryBan = 30 * 24 * time.Hour

// PlayerAPI is the subset of services.PlayerService the import uses.
type PlayerAPI interface {
	Create(ctx context.Context, req models.CreatePlayerRequest) (*models.Player, error)
	Ban(ctx context.Context, id int, req models.BanPlayerRequest) error
}

// TownAPI is the subset of services.TownService the import uses.
type TownAPI interface {
	Create(ctx context.Context, req models.CreateTownRequest) (*models.Town, error)
	Update(ctx context.Context, id int, req models.UpdateTownRequest) (*models.Town, error)
}

// Importer creates towns, then players in their towns, then applies legacy
// bans, then sets town leaders. Records that fail are skipped and reported;
// the rest of the import continues.
type Importer struct {
	Players PlayerAPI
	Towns   TownAPI
	Logger  hclog.Logger

	// DryRun validates and counts records without calling the API.
	DryRun bool

	BanReason    string
	TemporaryBan time.Duration
}

// Result summarizes an import. TownIDs and PlayerIDs map legacy IDs to the
// IDs the API assigned; they are empty on a dry run.
type Result struct {
	TownsCreated   int
	PlayersCreated int
	PlayersBanned  int
	LeadersSet     int

	TownIDs   map[int]int
	PlayerIDs map[int]int
}

// Run imports towns and players. The returned error, if any, is a
// *multierror.Error holding one entry per failed record, unless ctx ended
// the import early.
func (im *Importer) Run(ctx context.Context, towns []Town, players []Player) (*Result, error) {
	logger := im.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	res := &Result{
		TownIDs:   make(map[int]int, len(towns)),
		PlayerIDs: make(map[int]int, len(players)),
	}
	var errs *multierror.Error

	// Towns.
	validTowns := make([]Town, 0, len(towns))
	for _, t := range towns {
		if err := ctx.Err(); err != nil {
			return res, multierror.Append(errs, err).ErrorOrNil()
		}
		if err := t.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("town %d: %w", t.ID, err))
			continue
		}
		validTowns = append(validTowns, t)

		if im.DryRun {
			res.TownsCreated++
			continue
		}
		created, err := im.Towns.Create(ctx, models.CreateTownRequest{
			Name:    t.Name,
			Level:   t.Level,
			QQGroup: t.QQGroup,
		})
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("town %d: %w", t.ID, err))
			continue
		}
		res.TownIDs[t.ID] = created.ID
		res.TownsCreated++
		logger.Debug("created town", "legacy_id", t.ID, "id", created.ID, "name", t.Name)
	}

	// Players, then their bans.
	legacyPlayers := make(map[int]bool, len(players))
	for _, p := range players {
		if err := ctx.Err(); err != nil {
			return res, multierror.Append(errs, err).ErrorOrNil()
		}
		if err := p.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("player %d: %w", p.ID, err))
			continue
		}
		legacyPlayers[p.ID] = true

		if im.DryRun {
			res.PlayersCreated++
			if p.BanMode != int(models.BanModeNormal) {
				res.PlayersBanned++
			}
			continue
		}

		req := models.CreatePlayerRequest{
			Name:      p.Name,
			QQ:        p.QQ,
			QQGuild:   p.QQGuild,
			Discord:   p.Discord,
			InQQGroup: p.InQQGroup == 1,
			InQQGuild: p.InQQGuild == 1,
			InDiscord: p.InDiscord == 1,
		}
		if p.Town != nil {
			if id, ok := res.TownIDs[*p.Town]; ok {
				req.TownID = models.Ptr(id)
			}
		}
		created, err := im.Players.Create(ctx, req)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("player %d: %w", p.ID, err))
			continue
		}
		res.PlayerIDs[p.ID] = created.ID
		res.PlayersCreated++
		logger.Debug("created player", "legacy_id", p.ID, "id", created.ID, "name", p.Name)

		ban, ok := im.banRequest(models.BanMode(p.BanMode))
		if !ok {
			continue
		}
		if err := im.Players.Ban(ctx, created.ID, ban); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("player %d: %w", p.ID, err))
			continue
		}
		res.PlayersBanned++
	}

	// Leaders, once both sides exist.
	for _, t := range validTowns {
		if err := ctx.Err(); err != nil {
			return res, multierror.Append(errs, err).ErrorOrNil()
		}
		if t.Leader == nil {
			continue
		}

		if im.DryRun {
			if legacyPlayers[*t.Leader] {
				res.LeadersSet++
			}
			continue
		}

		townID, ok := res.TownIDs[t.ID]
		if !ok {
			continue
		}
		leaderID, ok := res.PlayerIDs[*t.Leader]
		if !ok {
			logger.Warn("town leader was not imported", "town", t.ID, "leader", *t.Leader)
			continue
		}
		if _, err := im.Towns.Update(ctx, townID, models.UpdateTownRequest{LeaderID: models.Ptr(leaderID)}); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("town %d leader: %w", t.ID, err))
			continue
		}
		res.LeadersSet++
	}

	return res, errs.ErrorOrNil()
}

func (im *Importer) banRequest(mode models.BanMode) (models.BanPlayerRequest, bool) {
	reason := im.BanReason
	if reason == "" {
		reason = DefaultBanReason
	}

	switch mode {
	case models.BanModePermanent:
		return models.BanPlayerRequest{BanMode: mode, Reason: reason}, true
	case models.BanModeTemporary:
		d := im.TemporaryBan
		if d <= 0 {
			d = DefaultTemporaryBan
		}
		return models.BanPlayerRequest{
			BanMode:         mode,
			DurationSeconds: models.Ptr(int64(d / time.Second)),
			Reason:          reason,
		}, true
	default:
		return models.BanPlayerRequest{}, false
	}
}
