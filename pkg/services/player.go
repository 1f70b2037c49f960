package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
)

// ListPlayersOptions filters the player list.
type ListPlayersOptions struct {
	PageOptions
	Search  *string         `query:"search"`
	TownID  *int            `query:"town_id"`
	BanMode *models.BanMode `query:"ban_mode"`
	Name    *string         `query:"name"`
	QQ      *string         `query:"qq"`
	QQGuild *string         `query:"qqguild"`
	Discord *string         `query:"discord"`
}

// PlayerService manages players.
type PlayerService struct {
	client Requester
}

// NewPlayerService creates a PlayerService.
func NewPlayerService(client Requester) *PlayerService {
	return &PlayerService{client: client}
}

// List returns a page of players. opts may be nil.
func (s *PlayerService) List(ctx context.Context, opts *ListPlayersOptions) (*models.PlayersListData, error) {
	var data models.PlayersListData
	if err := s.client.Get(ctx, resourcePath("/players"), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return &data, nil
}

// Create registers a player.
func (s *PlayerService) Create(ctx context.Context, req models.CreatePlayerRequest) (*models.Player, error) {
	var player models.Player
	if err := s.client.Post(ctx, resourcePath("/players"), req, &player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &player, nil
}

// Get returns a player by ID.
func (s *PlayerService) Get(ctx context.Context, id int) (*models.Player, error) {
	var player models.Player
	if err := s.client.Get(ctx, resourcePath("/players/%d", id), nil, &player); err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return &player, nil
}

// Update changes the supplied fields of a player and returns the result.
func (s *PlayerService) Update(ctx context.Context, id int, req models.UpdatePlayerRequest) (*models.Player, error) {
	var player models.Player
	if err := s.client.Put(ctx, resourcePath("/players/%d", id), req, &player); err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return &player, nil
}

// Delete removes a player.
func (s *PlayerService) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, resourcePath("/players/%d", id), nil); err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return nil
}

// Ban bans a player.
func (s *PlayerService) Ban(ctx context.Context, id int, req models.BanPlayerRequest) error {
	if err := s.client.Post(ctx, resourcePath("/players/%d/ban", id), req, nil); err != nil {
		return fmt.Errorf("failed to ban player %d: %w", id, err)
	}
	return nil
}

// Unban lifts a player's ban.
func (s *PlayerService) Unban(ctx context.Context, id int) error {
	if err := s.client.Post(ctx, resourcePath("/players/%d/unban", id), nil, nil); err != nil {
		return fmt.Errorf("failed to unban player %d: %w", id, err)
	}
	return nil
}

// Validate asks whether a batch of players may log in to a server.
func (s *PlayerService) Validate(ctx context.Context, req models.ValidateRequest) (*models.ValidateResponse, error) {
	var resp models.ValidateResponse
	if err := s.client.Post(ctx, resourcePath("/players/validate"), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to validate players: %w", err)
	}
	return &resp, nil
}
