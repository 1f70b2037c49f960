package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/newnancity/nanmanager/pkg/models"
)

// ListIPsOptions filters IP lists.
type ListIPsOptions struct {
	PageOptions
	BannedOnly     *bool               `query:"banned_only"`
	MinThreatLevel *models.ThreatLevel `query:"min_threat_level"`
	MinRiskScore   *int                `query:"min_risk_score"`
}

// IPService queries and bans IP addresses.
type IPService struct {
	client Requester
}

// NewIPService creates an IPService.
func NewIPService(client Requester) *IPService {
	return &IPService{client: client}
}

// Get returns what the server knows about an IP address.
func (s *IPService) Get(ctx context.Context, ip string) (*models.IPInfo, error) {
	var info models.IPInfo
	if err := s.client.Get(ctx, resourcePath("/ips/%s", url.PathEscape(ip)), nil, &info); err != nil {
		return nil, fmt.Errorf("failed to get IP %s: %w", ip, err)
	}
	return &info, nil
}

// Ban bans one or more IP addresses.
func (s *IPService) Ban(ctx context.Context, req models.BanIPRequest) error {
	if err := s.client.Post(ctx, resourcePath("/ips/ban"), req, nil); err != nil {
		return fmt.Errorf("failed to ban IPs: %w", err)
	}
	return nil
}

// Unban lifts bans on one or more IP addresses.
func (s *IPService) Unban(ctx context.Context, req models.UnbanIPRequest) error {
	if err := s.client.Post(ctx, resourcePath("/ips/unban"), req, nil); err != nil {
		return fmt.Errorf("failed to unban IPs: %w", err)
	}
	return nil
}

// List returns a page of IP records. opts may be nil.
func (s *IPService) List(ctx context.Context, opts *ListIPsOptions) (*models.IPsListData, error) {
	return s.list(ctx, "/ips", "IPs", opts)
}

// ListBanned returns a page of banned IP addresses.
func (s *IPService) ListBanned(ctx context.Context, opts *ListIPsOptions) (*models.IPsListData, error) {
	return s.list(ctx, "/ips/banned", "banned IPs", opts)
}

// ListSuspicious returns a page of IP addresses flagged as suspicious.
func (s *IPService) ListSuspicious(ctx context.Context, opts *ListIPsOptions) (*models.IPsListData, error) {
	return s.list(ctx, "/ips/suspicious", "suspicious IPs", opts)
}

// ListHighRisk returns a page of high risk IP addresses.
func (s *IPService) ListHighRisk(ctx context.Context, opts *ListIPsOptions) (*models.IPsListData, error) {
	return s.list(ctx, "/ips/high-risk", "high risk IPs", opts)
}

func (s *IPService) list(ctx context.Context, path, what string, opts *ListIPsOptions) (*models.IPsListData, error) {
	var data models.IPsListData
	if err := s.client.Get(ctx, apiPrefix+path, opts, &data); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	return &data, nil
}

// Statistics returns aggregate counts over all known IP addresses.
func (s *IPService) Statistics(ctx context.Context) (*models.IPStatistics, error) {
	var stats models.IPStatistics
	if err := s.client.Get(ctx, resourcePath("/ips/statistics"), nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get IP statistics: %w", err)
	}
	return &stats, nil
}
