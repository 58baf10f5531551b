package repository

import (
	"context"
	"sort"

	"admin-console-backend/internal/database/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const statsQuery = `
SELECT
	(SELECT COUNT(*) FROM users)                         AS total_users,
	(SELECT COUNT(*) FROM users WHERE status = TRUE)     AS active_users,
	(SELECT COUNT(*) FROM groups)                        AS total_groups,
	(SELECT COUNT(*) FROM events)                        AS total_events,
	(SELECT COUNT(*) FROM events WHERE status = 'active')  AS active_events,
	(SELECT COUNT(*) FROM surveys)                       AS total_surveys,
	(SELECT COUNT(*) FROM surveys WHERE status = 'active') AS active_surveys`

// activitySources lists one recent-rows query per table. Each takes the row limit.
var activitySources = []string{
	`SELECT 'user' AS kind, 'New user registered' AS action, email AS detail, created_at AS occurred_at
		FROM users ORDER BY created_at DESC LIMIT ?`,
	`SELECT 'group' AS kind, 'Group created' AS action, name AS detail, created_at AS occurred_at
		FROM groups ORDER BY created_at DESC LIMIT ?`,
	`SELECT 'event' AS kind, 'Event scheduled' AS action, name AS detail, created_at AS occurred_at
		FROM events ORDER BY created_at DESC LIMIT ?`,
	`SELECT 'survey' AS kind, 'Survey created' AS action, name AS detail, created_at AS occurred_at
		FROM surveys ORDER BY created_at DESC LIMIT ?`,
}

// DashboardRepository runs the read-only aggregate queries behind the dashboard
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats returns entity totals and active counts in a single statement
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := r.db.WithContext(ctx).Raw(statsQuery).Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentActivity merges the newest rows of every entity table, newest first,
// truncated to limit. A failing source fails the whole feed.
func (r *DashboardRepository) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		return []models.Activity{}, nil
	}

	results := make([][]models.Activity, len(activitySources))
	g, gctx := errgroup.WithContext(ctx)
	for i, query := range activitySources {
		g.Go(func() error {
			var rows []models.Activity
			if err := r.db.WithContext(gctx).Raw(query, limit).Scan(&rows).Error; err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeActivity(results, limit), nil
}

// mergeActivity flattens the per-source slices, sorts by time descending and truncates
func mergeActivity(sources [][]models.Activity, limit int) []models.Activity {
	merged := make([]models.Activity, 0)
	for _, rows := range sources {
		merged = append(merged, rows...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt.After(merged[j].OccurredAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
