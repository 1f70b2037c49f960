package models

import (
	"fmt"
	"strings"
)

// BanMode is a player's ban state.
type BanMode int

const (
	BanModeNormal    BanMode = 0
	BanModeTemporary BanMode = 1
	BanModePermanent BanMode = 2
)

func (m BanMode) String() string {
	switch m {
	case BanModeNormal:
		return "normal"
	case BanModeTemporary:
		return "temporary"
	case BanModePermanent:
		return "permanent"
	default:
		return fmt.Sprintf("BanMode(%d)", int(m))
	}
}

// ParseBanMode parses a ban mode by name ("normal", "temporary",
// "permanent") or by number.
func ParseBanMode(s string) (BanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "0":
		return BanModeNormal, nil
	case "temporary", "temp", "1":
		return BanModeTemporary, nil
	case "permanent", "perm", "2":
		return BanModePermanent, nil
	default:
		return 0, fmt.Errorf("unknown ban mode: %q", s)
	}
}

// ServerType is the role of a registered server.
type ServerType string

const (
	ServerTypeMinecraft ServerType = "minecraft"
	ServerTypeProxy     ServerType = "proxy"
	ServerTypeLobby     ServerType = "lobby"
)

func (t ServerType) String() string { return string(t) }

// LoginAction is reported by game servers when a player joins or leaves.
type LoginAction string

const (
	LoginActionLogin  LoginAction = "login"
	LoginActionLogout LoginAction = "logout"
)

func (a LoginAction) String() string { return string(a) }

// TownMemberAction selects whether a town member is added or removed.
type TownMemberAction string

const (
	TownMemberAdd    TownMemberAction = "add"
	TownMemberRemove TownMemberAction = "remove"
)

func (a TownMemberAction) String() string { return string(a) }

// ThreatLevel grades how dangerous an IP address is.
type ThreatLevel int

const (
	ThreatLevelLow      ThreatLevel = 0
	ThreatLevelMedium   ThreatLevel = 1
	ThreatLevelHigh     ThreatLevel = 2
	ThreatLevelCritical ThreatLevel = 3
)

func (l ThreatLevel) String() string {
	switch l {
	case ThreatLevelLow:
		return "low"
	case ThreatLevelMedium:
		return "medium"
	case ThreatLevelHigh:
		return "high"
	case ThreatLevelCritical:
		return "critical"
	default:
		return fmt.Sprintf("ThreatLevel(%d)", int(l))
	}
}

// QueryStatus is the state of the server's lookup of an IP address.
type QueryStatus int

const (
	QueryStatusPending   QueryStatus = 0
	QueryStatusCompleted QueryStatus = 1
	QueryStatusFailed    QueryStatus = 2
)

func (s QueryStatus) String() string {
	switch s {
	case QueryStatusPending:
		return "pending"
	case QueryStatusCompleted:
		return "completed"
	case QueryStatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("QueryStatus(%d)", int(s))
	}
}
