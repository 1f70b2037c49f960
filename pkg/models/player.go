package models

// Player is a registered player.
type Player struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	TownID    *int    `json:"town_id,omitempty"`
	QQ        *string `json:"qq,omitempty"`
	QQGuild   *string `json:"qqguild,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	InQQGroup bool    `json:"in_qq_group"`
	InQQGuild bool    `json:"in_qq_guild"`
	InDiscord bool    `json:"in_discord"`

	BanMode   BanMode `json:"ban_mode"`
	BanExpire *Time   `json:"ban_expire,omitempty"`
	BanReason *string `json:"ban_reason,omitempty"`

	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"updated_at"`
}

// IsBanned reports whether the player is under any ban.
func (p Player) IsBanned() bool {
	return p.BanMode != BanModeNormal
}

// PlayersListData is a page of players.
type PlayersListData struct {
	Players []Player `json:"players"`
	PageInfo
}

func (d *PlayersListData) Items() []Player { return d.Players }

func (d *PlayersListData) SetItems(items []Player) { d.Players = items }

// PlayerLoginInfo identifies a player reported in a heartbeat.
type PlayerLoginInfo struct {
	PlayerID *int    `json:"player_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	IP       *string `json:"ip,omitempty"`
}

// PlayerValidateInfo is one player in a batch login validation.
type PlayerValidateInfo struct {
	PlayerName      string  `json:"player_name"`
	IP              string  `json:"ip"`
	ClientVersion   *string `json:"client_version,omitempty"`
	ProtocolVersion *string `json:"protocol_version,omitempty"`
}

// PlayerValidateResult is the server's verdict for one validated player.
type PlayerValidateResult struct {
	PlayerName string   `json:"player_name"`
	Allowed    bool     `json:"allowed"`
	PlayerID   *int     `json:"player_id,omitempty"`
	Reason     *string  `json:"reason,omitempty"`
	Newbie     bool     `json:"newbie"`
	BanMode    *BanMode `json:"ban_mode,omitempty"`
	BanExpire  *Time    `json:"ban_expire,omitempty"`
	BanReason  *string  `json:"ban_reason,omitempty"`
}

// ValidateResponse holds one result per validated player, in request order.
type ValidateResponse struct {
	Results     []PlayerValidateResult `json:"results"`
	ProcessedAt int64                  `json:"processed_at"`
}
