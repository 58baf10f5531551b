package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin-console-backend/internal/database/models"
	"admin-console-backend/internal/mocks"
	"admin-console-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
	svc := service.NewDashboardService(repo)

	repo.EXPECT().Stats(gomock.Any()).Return(&models.DashboardStats{
		TotalUsers:    5,
		ActiveUsers:   4,
		TotalGroups:   3,
		TotalEvents:   2,
		ActiveEvents:  1,
		TotalSurveys:  1,
		ActiveSurveys: 1,
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.StatCount{Total: 5, Active: 4}, stats.Users)
	assert.Equal(t, int64(3), stats.Groups.Total)
	assert.Equal(t, service.StatCount{Total: 2, Active: 1}, stats.Events)
	assert.Equal(t, service.StatCount{Total: 1, Active: 1}, stats.Surveys)
}

func TestDashboardStatsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
	svc := service.NewDashboardService(repo)

	repo.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("timeout"))

	stats, err := svc.Stats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardRecentActivityLimits(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default when unset", 0, 10},
		{"default when negative", -3, 10},
		{"passes through", 25, 25},
		{"capped", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
			svc := service.NewDashboardService(repo)

			repo.EXPECT().RecentActivity(gomock.Any(), tt.expected).Return([]models.Activity{}, nil)

			items, err := svc.RecentActivity(context.Background(), tt.requested)

			require.NoError(t, err)
			assert.NotNil(t, items)
		})
	}
}

func TestDashboardRecentActivityProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepositoryInterface(ctrl)
	svc := service.NewDashboardService(repo)
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().RecentActivity(gomock.Any(), 10).Return([]models.Activity{
		{Kind: "user", Action: "New user registered", Detail: "jdoe@example.com", OccurredAt: at},
	}, nil)

	items, err := svc.RecentActivity(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, service.ActivityResponse{
		Type:      "user",
		Action:    "New user registered",
		Detail:    "jdoe@example.com",
		Timestamp: at,
	}, items[0])
}
