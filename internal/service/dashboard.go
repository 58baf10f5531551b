package service

import (
	"context"
	"fmt"
	"time"

	"admin-console-backend/internal/repository"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

// DashboardService assembles the dashboard read models
type DashboardService struct {
	repo repository.DashboardRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

// StatCount is a total with the number of rows in the active state
type StatCount struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// TotalCount is a plain total for entities without a state
type TotalCount struct {
	Total int64 `json:"total"`
}

// DashboardStatsResponse carries the entity counts shown on the dashboard
type DashboardStatsResponse struct {
	Users   StatCount  `json:"users"`
	Groups  TotalCount `json:"groups"`
	Events  StatCount  `json:"events"`
	Surveys StatCount  `json:"surveys"`
}

// ActivityResponse is one entry of the recent activity feed
type ActivityResponse struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats returns the entity counts. Groups have no state and report a total only.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &DashboardStatsResponse{
		Users:   StatCount{Total: stats.TotalUsers, Active: stats.ActiveUsers},
		Groups:  TotalCount{Total: stats.TotalGroups},
		Events:  StatCount{Total: stats.TotalEvents, Active: stats.ActiveEvents},
		Surveys: StatCount{Total: stats.TotalSurveys, Active: stats.ActiveSurveys},
	}, nil
}

// RecentActivity returns the newest creations across all entities, newest first.
// A limit below 1 selects the default; larger limits are capped.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]ActivityResponse, error) {
	if limit < 1 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	items, err := s.repo.RecentActivity(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}

	out := make([]ActivityResponse, len(items))
	for i, a := range items {
		out[i] = ActivityResponse{
			Type:      a.Kind,
			Action:    a.Action,
			Detail:    a.Detail,
			Timestamp: a.OccurredAt,
		}
	}
	return out, nil
}
