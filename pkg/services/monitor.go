package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/models"
)

// MonitorService reports and reads server health.
type MonitorService struct {
	client Requester
}

// NewMonitorService creates a MonitorService.
func NewMonitorService(client Requester) *MonitorService {
	return &MonitorService{client: client}
}

// Heartbeat reports a server's state. Servers that stop sending heartbeats
// are marked offline once their status expires.
func (s *MonitorService) Heartbeat(ctx context.Context, serverID int, req models.HeartbeatRequest) (*models.HeartbeatData, error) {
	var data models.HeartbeatData
	if err := s.client.Post(ctx, resourcePath("/servers/%d/heartbeat", serverID), req, &data); err != nil {
		return nil, fmt.Errorf("failed to send heartbeat for server %d: %w", serverID, err)
	}
	return &data, nil
}

// GetLatencyStats returns the latency summary of a server.
func (s *MonitorService) GetLatencyStats(ctx context.Context, serverID int) (*models.LatencyStatsData, error) {
	var data models.LatencyStatsData
	if err := s.client.Get(ctx, resourcePath("/servers/%d/latency", serverID), nil, &data); err != nil {
		return nil, fmt.Errorf("failed to get latency stats for server %d: %w", serverID, err)
	}
	return &data, nil
}

// GetServerStatus returns the live status of a server.
func (s *MonitorService) GetServerStatus(ctx context.Context, serverID int) (*models.ServerStatus, error) {
	var status models.ServerStatus
	if err := s.client.Get(ctx, resourcePath("/servers/%d/status", serverID), nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get status for server %d: %w", serverID, err)
	}
	return &status, nil
}
