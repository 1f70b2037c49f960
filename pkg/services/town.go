package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
	"github.com/newnancity/nanmanager/pkg/transport"
)

// ListTownsOptions filters the town list.
type ListTownsOptions struct {
	PageOptions
	Search   *string `query:"search"`
	MinLevel *int    `query:"min_level"`
	MaxLevel *int    `query:"max_level"`
}

// TownService manages towns and their members.
type TownService struct {
	client Requester
}

// NewTownService creates a TownService.
func NewTownService(client Requester) *TownService {
	return &TownService{client: client}
}

// List returns a page of towns. opts may be nil.
func (s *TownService) List(ctx context.Context, opts *ListTownsOptions) (*models.TownsListData, error) {
	var data models.TownsListData
	if err := s.client.Get(ctx, resourcePath("/towns"), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list towns: %w", err)
	}
	return &data, nil
}

// Create creates a town.
func (s *TownService) Create(ctx context.Context, req models.CreateTownRequest) (*models.Town, error) {
	var town models.Town
	if err := s.client.Post(ctx, resourcePath("/towns"), req, &town); err != nil {
		return nil, fmt.Errorf("failed to create town: %w", err)
	}
	return &town, nil
}

// Get returns a town by ID.
func (s *TownService) Get(ctx context.Context, id int) (*models.Town, error) {
	var town models.Town
	if err := s.client.Get(ctx, resourcePath("/towns/%d", id), nil, &town); err != nil {
		return nil, fmt.Errorf("failed to get town %d: %w", id, err)
	}
	return &town, nil
}

// GetDetail returns a town with its leader and members.
func (s *TownService) GetDetail(ctx context.Context, id int) (*models.TownDetailResponse, error) {
	var detail models.TownDetailResponse
	query := transport.Params{"detail": true}
	if err := s.client.Get(ctx, resourcePath("/towns/%d", id), query, &detail); err != nil {
		return nil, fmt.Errorf("failed to get town %d detail: %w", id, err)
	}
	return &detail, nil
}

// Update changes the supplied fields of a town and returns the result.
func (s *TownService) Update(ctx context.Context, id int, req models.UpdateTownRequest) (*models.Town, error) {
	var town models.Town
	if err := s.client.Put(ctx, resourcePath("/towns/%d", id), req, &town); err != nil {
		return nil, fmt.Errorf("failed to update town %d: %w", id, err)
	}
	return &town, nil
}

// Delete removes a town.
func (s *TownService) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, resourcePath("/towns/%d", id), nil); err != nil {
		return fmt.Errorf("failed to delete town %d: %w", id, err)
	}
	return nil
}

// ListMembers returns a page of a town's members. opts may be nil.
func (s *TownService) ListMembers(ctx context.Context, id int, opts *PageOptions) (*models.TownMembersData, error) {
	var data models.TownMembersData
	if err := s.client.Get(ctx, resourcePath("/towns/%d/members", id), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list members of town %d: %w", id, err)
	}
	return &data, nil
}

// ManageMember adds a player to or removes one from a town.
func (s *TownService) ManageMember(ctx context.Context, id int, req models.ManageTownMemberRequest) error {
	if err := s.client.Post(ctx, resourcePath("/towns/%d/members", id), req, nil); err != nil {
		return fmt.Errorf("failed to %s member %d of town %d: %w", req.Action, req.PlayerID, id, err)
	}
	return nil
}

// AddMember adds a player to a town.
func (s *TownService) AddMember(ctx context.Context, id, playerID int) error {
	return s.ManageMember(ctx, id, models.ManageTownMemberRequest{
		PlayerID: playerID,
		Action:   models.TownMemberAdd,
	})
}

// RemoveMember removes a player from a town.
func (s *TownService) RemoveMember(ctx context.Context, id, playerID int) error {
	return s.ManageMember(ctx, id, models.ManageTownMemberRequest{
		PlayerID: playerID,
		Action:   models.TownMemberRemove,
	})
}
