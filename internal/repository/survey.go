package repository

import (
	"context"
	"time"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SurveyUpdate enumerates the survey columns that may be changed
type SurveyUpdate struct {
	Name     *string
	Form     []models.FormField // nil leaves the form untouched
	SetPoint *string
	Status   *models.SurveyStatus
}

func (u SurveyUpdate) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Form != nil {
		cols["form"] = datatypes.JSONSlice[models.FormField](u.Form)
	}
	if u.SetPoint != nil {
		cols["set_point"] = nullableText(u.SetPoint)
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// IsEmpty reports whether no member of the update set is present
func (u SurveyUpdate) IsEmpty() bool {
	return len(u.columns()) == 0
}

// SurveyRepository handles database operations for surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create creates a new survey
func (r *SurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	return translateError(r.db.WithContext(ctx).Create(survey).Error)
}

// GetByID retrieves a survey with the events it is attached to
func (r *SurveyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Survey, error) {
	var survey models.Survey
	err := r.db.WithContext(ctx).Preload("EventLinks.Event").First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// List returns a page of surveys matching the filter, newest first
func (r *SurveyRepository) List(ctx context.Context, filter ListFilter) ([]models.Survey, int64, error) {
	where := combine(
		searchScope(filter.Search, "name"),
		eqScope("status", filter.Status),
	)
	return listPage[models.Survey](ctx, r.db, filter, where, "created_at DESC", "EventLinks.Event")
}

// Update writes the set members of upd and returns the refreshed survey
func (r *SurveyRepository) Update(ctx context.Context, id uuid.UUID, upd SurveyUpdate) (*models.Survey, error) {
	cols := upd.columns()
	if len(cols) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.Survey{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a survey; event links cascade
func (r *SurveyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Survey{}, "id = ?", id).Error
}
