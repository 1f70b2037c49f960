package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
)

// TokenService manages API tokens.
type TokenService struct {
	client Requester
}

// NewTokenService creates a TokenService.
func NewTokenService(client Requester) *TokenService {
	return &TokenService{client: client}
}

// List returns a page of API tokens. opts may be nil.
func (s *TokenService) List(ctx context.Context, opts *PageOptions) (*models.ListApiTokensData, error) {
	var data models.ListApiTokensData
	if err := s.client.Get(ctx, resourcePath("/tokens"), opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return &data, nil
}

// Create creates a token. The returned TokenValue is the only time the secret
// is available.
func (s *TokenService) Create(ctx context.Context, req models.CreateApiTokenRequest) (*models.CreateApiTokenData, error) {
	var data models.CreateApiTokenData
	if err := s.client.Post(ctx, resourcePath("/tokens"), req, &data); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return &data, nil
}

// Get returns a token by ID.
func (s *TokenService) Get(ctx context.Context, id int) (*models.ApiToken, error) {
	var token models.ApiToken
	if err := s.client.Get(ctx, resourcePath("/tokens/%d", id), nil, &token); err != nil {
		return nil, fmt.Errorf("failed to get token %d: %w", id, err)
	}
	return &token, nil
}

// Update changes the supplied fields of a token and returns the result.
func (s *TokenService) Update(ctx context.Context, id int, req models.UpdateApiTokenRequest) (*models.ApiToken, error) {
	var token models.ApiToken
	if err := s.client.Put(ctx, resourcePath("/tokens/%d", id), req, &token); err != nil {
		return nil, fmt.Errorf("failed to update token %d: %w", id, err)
	}
	return &token, nil
}

// Delete revokes a token.
func (s *TokenService) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, resourcePath("/tokens/%d", id), nil); err != nil {
		return fmt.Errorf("failed to delete token %d: %w", id, err)
	}
	return nil
}
