package importer

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/afero"
)

// Player is a player record exported from the legacy database. The flag
// columns are 0/1 integers and Town is a legacy town ID.
type Player struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	QQ        *string `json:"qq"`
	QQGuild   *string `json:"qqguild"`
	Discord   *string `json:"discord"`
	InQQGroup int     `json:"inqqgroup"`
	InQQGuild int     `json:"inqqguild"`
	InDiscord int     `json:"indiscord"`
	Town      *int    `json:"town"`
	BanMode   int     `json:"ban_mode"`
}

func (p Player) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&p.InQQGroup, validation.In(0, 1)),
		validation.Field(&p.InQQGuild, validation.In(0, 1)),
		validation.Field(&p.InDiscord, validation.In(0, 1)),
		validation.Field(&p.BanMode, validation.In(0, 1, 2)),
	)
}

// Town is a town record exported from the legacy database. Leader is a
// legacy player ID.
type Town struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Level   int     `json:"level"`
	Leader  *int    `json:"leader"`
	QQGroup *string `json:"qqgroup"`
}

func (t Town) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Level, validation.Min(0)),
		validation.Field(&t.QQGroup, validation.NilOrNotEmpty, is.Digit),
	)
}

type playersFile struct {
	Players []Player `json:"players"`
}

type townsFile struct {
	Towns []Town `json:"towns"`
}

// LoadPlayers reads a {"players": [...]} export.
func LoadPlayers(fs afero.Fs, path string) ([]Player, error) {
	var f playersFile
	if err := readJSON(fs, path, &f); err != nil {
		return nil, err
	}
	return f.Players, nil
}

// LoadTowns reads a {"towns": [...]} export.
func LoadTowns(fs afero.Fs, path string) ([]Town, error) {
	var f townsFile
	if err := readJSON(fs, path, &f); err != nil {
		return nil, err
	}
	return f.Towns, nil
}

func readJSON(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
