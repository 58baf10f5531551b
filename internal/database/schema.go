package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// schemaStatements creates the four entity tables, the three join tables and their
// indexes. Every statement is idempotent. Unique constraints double as the lookup
// indexes for username, email and group name.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(30) NOT NULL,
		email VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'moderator', 'user')),
		password TEXT NOT NULL,
		status BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_users_username UNIQUE (username),
		CONSTRAINT uq_users_email UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(30) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_groups_name UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(30) NOT NULL,
		description TEXT,
		time_start TIMESTAMPTZ NOT NULL,
		time_end TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled'
			CHECK (status IN ('scheduled', 'active', 'completed', 'cancelled')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS surveys (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(30) NOT NULL,
		form JSONB NOT NULL DEFAULT '[]'::jsonb,
		set_point TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'active'
			CHECK (status IN ('active', 'inactive', 'completed')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_groups (
		user_id UUID NOT NULL,
		group_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, group_id),
		CONSTRAINT fk_user_groups_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		CONSTRAINT fk_user_groups_group FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS group_events (
		group_id UUID NOT NULL,
		event_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (group_id, event_id),
		CONSTRAINT fk_group_events_group FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE,
		CONSTRAINT fk_group_events_event FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS event_surveys (
		event_id UUID NOT NULL,
		survey_id UUID NOT NULL,
		final_file TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (event_id, survey_id),
		CONSTRAINT fk_event_surveys_event FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
		CONSTRAINT fk_event_surveys_survey FOREIGN KEY (survey_id) REFERENCES surveys(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_groups_created_at ON groups (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_events_status ON events (status)`,
	`CREATE INDEX IF NOT EXISTS idx_events_time_start ON events (time_start DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_surveys_status ON surveys (status)`,
	`CREATE INDEX IF NOT EXISTS idx_user_groups_user_id ON user_groups (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_groups_group_id ON user_groups (group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_group_events_group_id ON group_events (group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_group_events_event_id ON group_events (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_surveys_event_id ON event_surveys (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_surveys_survey_id ON event_surveys (survey_id)`,
}

// Migrate creates the schema and, when seed is set, inserts the embedded baseline
// rows into empty tables. Everything runs in one transaction: a failure anywhere
// rolls all of it back.
func Migrate(ctx context.Context, db *gorm.DB, seed bool) error {
	var data *SeedData
	if seed {
		var err error
		if data, err = DefaultSeed(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return migrate(ctx, db, data)
}

// migrate applies the schema and then data, if any, in a single transaction
func migrate(ctx context.Context, db *gorm.DB, data *SeedData) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range schemaStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}

		if data == nil {
			return nil
		}
		return seedTables(tx, data)
	})
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
