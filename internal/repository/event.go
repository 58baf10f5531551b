package repository

import (
	"context"
	"time"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventUpdate enumerates the event columns that may be changed
type EventUpdate struct {
	Name        *string
	Description *string
	TimeStart   *time.Time
	TimeEnd     *time.Time
	Status      *models.EventStatus
}

func (u EventUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = nullableText(u.Description)
	}
	if u.TimeStart != nil {
		cols["time_start"] = *u.TimeStart
	}
	if u.TimeEnd != nil {
		cols["time_end"] = *u.TimeEnd
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// IsEmpty reports whether no member of the update set is present
func (u EventUpdate) IsEmpty() bool {
	return len(u.columns()) == 0
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return translateError(r.db.WithContext(ctx).Create(event).Error)
}

// GetByID retrieves an event with its groups and linked surveys
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Groups", orderByName).
		Preload("SurveyLinks.Survey").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns a page of events matching the filter, latest start first
func (r *EventRepository) List(ctx context.Context, filter ListFilter) ([]models.Event, int64, error) {
	where := combine(
		searchScope(filter.Search, "name", "description"),
		eqScope("status", filter.Status),
	)
	return listPage[models.Event](ctx, r.db, filter, where, "time_start DESC", "Groups", "SurveyLinks.Survey")
}

// Update writes the set members of upd and returns the refreshed event
func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, upd EventUpdate) (*models.Event, error) {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete deletes an event; group and survey links cascade
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id).Error
}
