package models

// PlayerServer links a player to a server they have joined.
type PlayerServer struct {
	PlayerID  int  `json:"player_id"`
	ServerID  int  `json:"server_id"`
	Online    bool `json:"online"`
	JoinedAt  Time `json:"joined_at"`
	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"updated_at"`
}

// OnlinePlayer is a player currently on a server.
type OnlinePlayer struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	ServerID   int    `json:"server_id"`
	ServerName string `json:"server_name"`
	JoinedAt   Time   `json:"joined_at"`
}

// PlayerServersData lists the servers linked to one player.
type PlayerServersData struct {
	Servers []PlayerServer `json:"servers"`
	Total   int            `json:"total"`
}

// ServerPlayersData is a page of online players.
type ServerPlayersData struct {
	Players []OnlinePlayer `json:"players"`
	PageInfo
}

func (d *ServerPlayersData) Items() []OnlinePlayer { return d.Players }

func (d *ServerPlayersData) SetItems(items []OnlinePlayer) { d.Players = items }
