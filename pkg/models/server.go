package models

// ServerRegistry is a registered game server.
type ServerRegistry struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	ServerType  *ServerType `json:"server_type,omitempty"`
	Description *string     `json:"description,omitempty"`
	CreatedAt   Time        `json:"created_at"`
	UpdatedAt   Time        `json:"updated_at"`
}

// ServerStatus is the live state of a server as of its last heartbeat.
type ServerStatus struct {
	ServerID       int      `json:"server_id"`
	Online         bool     `json:"online"`
	CurrentPlayers int      `json:"current_players"`
	MaxPlayers     int      `json:"max_players"`
	LatencyMs      *int     `json:"latency_ms,omitempty"`
	TPS            *float64 `json:"tps,omitempty"`
	Version        *string  `json:"version,omitempty"`
	MOTD           *string  `json:"motd,omitempty"`
	ExpireAt       Time     `json:"expire_at"`
	LastHeartbeat  Time     `json:"last_heartbeat"`
}

// ServersListData is a page of servers.
type ServersListData struct {
	Servers []ServerRegistry `json:"servers"`
	PageInfo
}

func (d *ServersListData) Items() []ServerRegistry { return d.Servers }

func (d *ServersListData) SetItems(items []ServerRegistry) { d.Servers = items }

// ServerDetailData is a server with its current status, if it has reported
// one.
type ServerDetailData struct {
	Server ServerRegistry `json:"server"`
	Status *ServerStatus  `json:"status,omitempty"`
}

// LatencyStatsData summarizes the round-trip times a server has reported.
// Latencies are in milliseconds.
type LatencyStatsData struct {
	ServerID    int     `json:"server_id"`
	Count       int     `json:"count"`
	Current     int     `json:"current"`
	Average     int     `json:"average"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Variance    float64 `json:"variance"`
	LastUpdated Time    `json:"last_updated"`
}

// HeartbeatData is the server's acknowledgement of a heartbeat. Timestamps
// are unix milliseconds.
type HeartbeatData struct {
	ReceivedAt    int64  `json:"received_at"`
	ResponseAt    int64  `json:"response_at"`
	SequenceID    int64  `json:"sequence_id"`
	ServerTime    int64  `json:"server_time"`
	Status        string `json:"status"`
	NextHeartbeat int64  `json:"next_heartbeat"`
	ExpireAt      int64  `json:"expire_at"`
}
