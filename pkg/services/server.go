package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
)

// ListServersOptions filters the server list.
type ListServersOptions struct {
	PageOptions
	Search     *string `query:"search"`
	OnlineOnly *bool   `query:"online_only"`
}

// ServerService manages registered game servers.
type ServerService struct {
	client Requester
}

// NewServerService creates a ServerService.
func NewServerService(client Requester) *ServerService {
	return &ServerService{client: client}
}

// List returns a page of servers. opts may be nil.
func (s *ServerService) List(ctx context.Context, opts *ListServersOptions) (*models.ServersListData, error) {
	var data models.ServersListData
	if err := s.client.Get(ctx, resourcePath("/servers"), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return &data, nil
}

// Create registers a server.
func (s *ServerService) Create(ctx context.Context, req models.CreateServerRequest) (*models.ServerRegistry, error) {
	var server models.ServerRegistry
	if err := s.client.Post(ctx, resourcePath("/servers"), req, &server); err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return &server, nil
}

// Get returns a server by ID.
func (s *ServerService) Get(ctx context.Context, id int) (*models.ServerRegistry, error) {
	var server models.ServerRegistry
	if err := s.client.Get(ctx, resourcePath("/servers/%d", id), nil, &server); err != nil {
		return nil, fmt.Errorf("failed to get server %d: %w", id, err)
	}
	return &server, nil
}

// Update changes the supplied fields of a server and returns the result.
func (s *ServerService) Update(ctx context.Context, id int, req models.UpdateServerRequest) (*models.ServerRegistry, error) {
	var server models.ServerRegistry
	if err := s.client.Put(ctx, resourcePath("/servers/%d", id), req, &server); err != nil {
		return nil, fmt.Errorf("failed to update server %d: %w", id, err)
	}
	return &server, nil
}

// Delete removes a server.
func (s *ServerService) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, resourcePath("/servers/%d", id), nil); err != nil {
		return fmt.Errorf("failed to delete server %d: %w", id, err)
	}
	return nil
}

// GetDetail returns a server together with its current status.
func (s *ServerService) GetDetail(ctx context.Context, id int) (*models.ServerDetailData, error) {
	var detail models.ServerDetailData
	if err := s.client.Get(ctx, resourcePath("/servers/%d/detail", id), nil, &detail); err != nil {
		return nil, fmt.Errorf("failed to get server %d detail: %w", id, err)
	}
	return &detail, nil
}
