package repository

import (
	"context"
	"time"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupUpdate enumerates the group columns that may be changed
type GroupUpdate struct {
	Name *string
	// Description set to a pointer to "" clears the column to NULL
	Description *string
}

func (u GroupUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = nullableText(u.Description)
	}
	return cols
}

// IsEmpty reports whether no member of the update set is present
func (u GroupUpdate) IsEmpty() bool {
	return len(u.columns()) == 0
}

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return translateError(r.db.WithContext(ctx).Create(group).Error)
}

// GetByID retrieves a group with its users and events
func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).
		Preload("Users", orderByUsername).
		Preload("Events", orderByTimeStart).
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns a page of groups matching the filter, newest first
func (r *GroupRepository) List(ctx context.Context, filter ListFilter) ([]models.Group, int64, error) {
	where := searchScope(filter.Search, "name", "description")
	return listPage[models.Group](ctx, r.db, filter, where, "created_at DESC", "Users", "Events")
}

// Update writes the set members of upd and returns the refreshed group
func (r *GroupRepository) Update(ctx context.Context, id uuid.UUID, upd GroupUpdate) (*models.Group, error) {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a group; user and event links cascade
func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Group{}, "id = ?", id).Error
}

// nullableText stores absent or empty optional text as NULL
func nullableText(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func orderByUsername(db *gorm.DB) *gorm.DB {
	return db.Order("username ASC")
}

func orderByTimeStart(db *gorm.DB) *gorm.DB {
	return db.Order("time_start DESC")
}
