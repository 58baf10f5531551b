package models

import "time"

// DashboardStats holds the aggregate counters shown on the dashboard
type DashboardStats struct {
	TotalUsers    int64
	ActiveUsers   int64
	TotalGroups   int64
	TotalEvents   int64
	ActiveEvents  int64
	TotalSurveys  int64
	ActiveSurveys int64
}

// Activity is a single entry of the recent-activity feed
type Activity struct {
	Kind       string    `gorm:"column:kind"`
	Action     string    `gorm:"column:action"`
	Detail     string    `gorm:"column:detail"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}
