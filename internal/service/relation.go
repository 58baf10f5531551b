package service

import (
	"context"
	"fmt"

	"admin-console-backend/internal/audit"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RelationService manages the user-group, group-event and event-survey links
type RelationService struct {
	repo      repository.RelationRepositoryInterface
	validator *validator.Validate
	audit     audit.Publisher
}

// NewRelationService creates a new relation service
func NewRelationService(repo repository.RelationRepositoryInterface, validator *validator.Validate, publisher audit.Publisher) *RelationService {
	return &RelationService{
		repo:      repo,
		validator: validator,
		audit:     publisher,
	}
}

// UserGroupRequest identifies a user-group pair
type UserGroupRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	GroupID string `json:"group_id" validate:"required,uuid"`
}

// GroupEventRequest identifies a group-event pair
type GroupEventRequest struct {
	GroupID string `json:"group_id" validate:"required,uuid"`
	EventID string `json:"event_id" validate:"required,uuid"`
}

// EventSurveyRequest identifies an event-survey pair. FinalFile is only read when linking.
type EventSurveyRequest struct {
	EventID   string  `json:"event_id" validate:"required,uuid"`
	SurveyID  string  `json:"survey_id" validate:"required,uuid"`
	FinalFile *string `json:"final_file" validate:"omitnil,max=500"`
}

// AddUserToGroup links a user to a group. Repeating the call is harmless.
func (s *RelationService) AddUserToGroup(ctx context.Context, req *UserGroupRequest) error {
	userID, groupID, err := s.pair(req, req.UserID, req.GroupID)
	if err != nil {
		return err
	}
	if err := s.repo.AddUserToGroup(ctx, userID, groupID); err != nil {
		return linkError("user to group", err)
	}
	audit.Record(ctx, s.audit, "user_group", audit.ActionLinked, pairID(userID, groupID))
	return nil
}

// RemoveUserFromGroup unlinks a user from a group. Unlinked pairs are ignored.
func (s *RelationService) RemoveUserFromGroup(ctx context.Context, req *UserGroupRequest) error {
	userID, groupID, err := s.pair(req, req.UserID, req.GroupID)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveUserFromGroup(ctx, userID, groupID); err != nil {
		return fmt.Errorf("failed to remove user from group: %w", err)
	}
	audit.Record(ctx, s.audit, "user_group", audit.ActionUnlinked, pairID(userID, groupID))
	return nil
}

// AddGroupToEvent links a group to an event. Repeating the call is harmless.
func (s *RelationService) AddGroupToEvent(ctx context.Context, req *GroupEventRequest) error {
	groupID, eventID, err := s.pair(req, req.GroupID, req.EventID)
	if err != nil {
		return err
	}
	if err := s.repo.AddGroupToEvent(ctx, groupID, eventID); err != nil {
		return linkError("group to event", err)
	}
	audit.Record(ctx, s.audit, "group_event", audit.ActionLinked, pairID(groupID, eventID))
	return nil
}

// RemoveGroupFromEvent unlinks a group from an event. Unlinked pairs are ignored.
func (s *RelationService) RemoveGroupFromEvent(ctx context.Context, req *GroupEventRequest) error {
	groupID, eventID, err := s.pair(req, req.GroupID, req.EventID)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveGroupFromEvent(ctx, groupID, eventID); err != nil {
		return fmt.Errorf("failed to remove group from event: %w", err)
	}
	audit.Record(ctx, s.audit, "group_event", audit.ActionUnlinked, pairID(groupID, eventID))
	return nil
}

// AddSurveyToEvent links a survey to an event. Repeating the call is harmless.
func (s *RelationService) AddSurveyToEvent(ctx context.Context, req *EventSurveyRequest) error {
	eventID, surveyID, err := s.pair(req, req.EventID, req.SurveyID)
	if err != nil {
		return err
	}
	if err := s.repo.AddSurveyToEvent(ctx, eventID, surveyID, emptyToNil(req.FinalFile)); err != nil {
		return linkError("survey to event", err)
	}
	audit.Record(ctx, s.audit, "event_survey", audit.ActionLinked, pairID(eventID, surveyID))
	return nil
}

// RemoveSurveyFromEvent unlinks a survey from an event. Unlinked pairs are ignored.
func (s *RelationService) RemoveSurveyFromEvent(ctx context.Context, req *EventSurveyRequest) error {
	eventID, surveyID, err := s.pair(req, req.EventID, req.SurveyID)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveSurveyFromEvent(ctx, eventID, surveyID); err != nil {
		return fmt.Errorf("failed to remove survey from event: %w", err)
	}
	audit.Record(ctx, s.audit, "event_survey", audit.ActionUnlinked, pairID(eventID, surveyID))
	return nil
}

// pair validates req and parses its two identifiers
func (s *RelationService) pair(req interface{}, left, right string) (uuid.UUID, uuid.UUID, error) {
	if err := validate(s.validator, req); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	l, err := uuid.Parse(left)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.NewValidationError("id", "Invalid ID")
	}
	r, err := uuid.Parse(right)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.NewValidationError("id", "Invalid ID")
	}
	return l, r, nil
}

// linkError keeps a missing-endpoint error typed so it surfaces as 404
func linkError(what string, err error) error {
	if apperrors.IsNotFound(err) {
		return err
	}
	return fmt.Errorf("failed to add %s: %w", what, err)
}

func pairID(a, b uuid.UUID) string {
	return a.String() + ":" + b.String()
}
