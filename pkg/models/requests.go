package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Optional request fields are pointers tagged omitempty: nil means "not
// supplied" and is left out of the body, while a pointer to an empty value
// is sent and clears the field.

// CreatePlayerRequest registers a player.
type CreatePlayerRequest struct {
	Name      string  `json:"name"`
	TownID    *int    `json:"town_id,omitempty"`
	QQ        *string `json:"qq,omitempty"`
	QQGuild   *string `json:"qqguild,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	InQQGroup bool    `json:"in_qq_group"`
	InQQGuild bool    `json:"in_qq_guild"`
	InDiscord bool    `json:"in_discord"`
}

// Validate checks the request before it is sent.
func (r CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.TownID, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

// UpdatePlayerRequest changes the supplied fields of a player.
type UpdatePlayerRequest struct {
	Name      *string `json:"name,omitempty"`
	TownID    *int    `json:"town_id,omitempty"`
	QQ        *string `json:"qq,omitempty"`
	QQGuild   *string `json:"qqguild,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	InQQGroup *bool   `json:"in_qq_group,omitempty"`
	InQQGuild *bool   `json:"in_qq_guild,omitempty"`
	InDiscord *bool   `json:"in_discord,omitempty"`
}

// BanPlayerRequest bans a player. DurationSeconds applies to temporary bans.
type BanPlayerRequest struct {
	BanMode         BanMode `json:"ban_mode"`
	DurationSeconds *int64  `json:"duration_seconds,omitempty"`
	Reason          string  `json:"reason"`
}

// Validate checks the request before it is sent.
func (r BanPlayerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BanMode,
			validation.Required.Error("must be temporary or permanent"),
			validation.In(BanModeTemporary, BanModePermanent).Error("must be temporary or permanent")),
		validation.Field(&r.DurationSeconds,
			validation.When(r.BanMode == BanModeTemporary, validation.Required, validation.Min(int64(1)))),
		validation.Field(&r.Reason, validation.Required),
	)
}

// ValidateRequest asks the server whether a batch of players may join.
type ValidateRequest struct {
	Players   []PlayerValidateInfo `json:"players"`
	ServerID  int                  `json:"server_id"`
	Login     bool                 `json:"login"`
	Timestamp int64                `json:"timestamp"`
}

// CreateServerRequest registers a server.
type CreateServerRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description,omitempty"`
}

// UpdateServerRequest changes the supplied fields of a server.
type UpdateServerRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HeartbeatRequest reports a server's state.
type HeartbeatRequest struct {
	Timestamp      *int64            `json:"timestamp,omitempty"`
	SequenceID     *int64            `json:"sequence_id,omitempty"`
	CurrentPlayers *int              `json:"current_players,omitempty"`
	MaxPlayers     *int              `json:"max_players,omitempty"`
	TPS            *float64          `json:"tps,omitempty"`
	Version        *string           `json:"version,omitempty"`
	MOTD           *string           `json:"motd,omitempty"`
	LastRTTMs      *int64            `json:"last_rtt_ms,omitempty"`
	PlayerList     []PlayerLoginInfo `json:"player_list,omitempty"`
}

// CreateTownRequest creates a town.
type CreateTownRequest struct {
	Name        string  `json:"name"`
	Level       int     `json:"level"`
	LeaderID    *int    `json:"leader_id,omitempty"`
	QQGroup     *string `json:"qq_group,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks the request before it is sent.
func (r CreateTownRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Level, validation.Min(0)),
		validation.Field(&r.QQGroup, validation.NilOrNotEmpty, is.Digit),
	)
}

// UpdateTownRequest changes the supplied fields of a town.
type UpdateTownRequest struct {
	Name        *string `json:"name,omitempty"`
	Level       *int    `json:"level,omitempty"`
	LeaderID    *int    `json:"leader_id,omitempty"`
	QQGroup     *string `json:"qq_group,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ManageTownMemberRequest adds a player to or removes one from a town.
type ManageTownMemberRequest struct {
	PlayerID int              `json:"player_id"`
	Action   TownMemberAction `json:"action"`
}

// CreateApiTokenRequest creates an API token.
type CreateApiTokenRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Description *string `json:"description,omitempty"`
	ExpireDays  *int    `json:"expire_days,omitempty"`
}

// Validate checks the request before it is sent.
func (r CreateApiTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.ExpireDays, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

// UpdateApiTokenRequest changes the supplied fields of a token.
type UpdateApiTokenRequest struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// BanIPRequest bans one or more IP addresses.
type BanIPRequest struct {
	IPs    []string `json:"ips"`
	Reason string   `json:"reason"`
}

// Validate checks the request before it is sent.
func (r BanIPRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IPs, validation.Required, validation.Each(is.IP)),
		validation.Field(&r.Reason, validation.Required),
	)
}

// UnbanIPRequest lifts bans on one or more IP addresses.
type UnbanIPRequest struct {
	IPs []string `json:"ips"`
}

// SetPlayersOfflineRequest marks players offline on a server.
type SetPlayersOfflineRequest struct {
	ServerID  int   `json:"server_id"`
	PlayerIDs []int `json:"player_ids"`
}
