package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
	"github.com/newnancity/nanmanager/pkg/transport"
)

// ServerPlayersOptions filters the online player list.
type ServerPlayersOptions struct {
	PageOptions
	Search     *string `query:"search"`
	ServerID   *int    `query:"server_id"`
	OnlineOnly *bool   `query:"online_only"`
}

// PlayerServerService queries which players are on which servers.
type PlayerServerService struct {
	client Requester
}

// NewPlayerServerService creates a PlayerServerService.
func NewPlayerServerService(client Requester) *PlayerServerService {
	return &PlayerServerService{client: client}
}

// GetPlayerServers returns the servers a player is linked to. When
// onlineOnly is set only servers the player is currently on are returned.
func (s *PlayerServerService) GetPlayerServers(ctx context.Context, playerID int, onlineOnly bool) (*models.PlayerServersData, error) {
	query := transport.Params{}
	if onlineOnly {
		query["online_only"] = true
	}

	var data models.PlayerServersData
	if err := s.client.Get(ctx, resourcePath("/players/%d/servers", playerID), query, &data); err != nil {
		return nil, fmt.Errorf("failed to get servers of player %d: %w", playerID, err)
	}
	return &data, nil
}

// GetServerPlayers returns a page of players on servers. opts may be nil.
func (s *PlayerServerService) GetServerPlayers(ctx context.Context, opts *ServerPlayersOptions) (*models.ServerPlayersData, error) {
	var data models.ServerPlayersData
	if err := s.client.Get(ctx, resourcePath("/server-players"), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to get server players: %w", err)
	}
	return &data, nil
}

// SetPlayersOffline marks players offline on a server, typically after the
// server restarts without reporting logouts.
func (s *PlayerServerService) SetPlayersOffline(ctx context.Context, serverID int, playerIDs []int) error {
	req := models.SetPlayersOfflineRequest{ServerID: serverID, PlayerIDs: playerIDs}
	if err := s.client.Post(ctx, resourcePath("/servers/players/offline"), req, nil); err != nil {
		return fmt.Errorf("failed to set players offline on server %d: %w", serverID, err)
	}
	return nil
}
