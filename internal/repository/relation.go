package repository

import (
	"context"

	"admin-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RelationRepository manages the rows of the three join tables
type RelationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// AddUserToGroup links a user to a group. Linking an already linked pair is a no-op.
func (r *RelationRepository) AddUserToGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	return r.insertIgnore(ctx, &models.UserGroup{UserID: userID, GroupID: groupID})
}

// RemoveUserFromGroup unlinks a user from a group. Missing pairs are ignored.
func (r *RelationRepository) RemoveUserFromGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.UserGroup{}).Error
}

// AddGroupToEvent links a group to an event. Linking an already linked pair is a no-op.
func (r *RelationRepository) AddGroupToEvent(ctx context.Context, groupID, eventID uuid.UUID) error {
	return r.insertIgnore(ctx, &models.GroupEvent{GroupID: groupID, EventID: eventID})
}

// RemoveGroupFromEvent unlinks a group from an event. Missing pairs are ignored.
func (r *RelationRepository) RemoveGroupFromEvent(ctx context.Context, groupID, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND event_id = ?", groupID, eventID).
		Delete(&models.GroupEvent{}).Error
}

// AddSurveyToEvent links a survey to an event with an optional final file reference.
// An existing pair is left as it is.
func (r *RelationRepository) AddSurveyToEvent(ctx context.Context, eventID, surveyID uuid.UUID, finalFile *string) error {
	return r.insertIgnore(ctx, &models.EventSurvey{EventID: eventID, SurveyID: surveyID, FinalFile: finalFile})
}

// RemoveSurveyFromEvent unlinks a survey from an event. Missing pairs are ignored.
func (r *RelationRepository) RemoveSurveyFromEvent(ctx context.Context, eventID, surveyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND survey_id = ?", eventID, surveyID).
		Delete(&models.EventSurvey{}).Error
}

func (r *RelationRepository) insertIgnore(ctx context.Context, row interface{}) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(row).Error
	return translateError(err)
}
