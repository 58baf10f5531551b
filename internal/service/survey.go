package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"admin-console-backend/internal/audit"
	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyService handles business logic for surveys
type SurveyService struct {
	repo      repository.SurveyRepositoryInterface
	validator *validator.Validate
	audit     audit.Publisher
}

// NewSurveyService creates a new survey service
func NewSurveyService(repo repository.SurveyRepositoryInterface, validator *validator.Validate, publisher audit.Publisher) *SurveyService {
	return &SurveyService{
		repo:      repo,
		validator: validator,
		audit:     publisher,
	}
}

// CreateSurveyRequest represents the request to create a survey
type CreateSurveyRequest struct {
	Name     string              `json:"name" validate:"required,max=30"`
	Form     json.RawMessage     `json:"form" validate:"required" swaggertype:"array,object"`
	SetPoint *string             `json:"set_point"`
	Status   models.SurveyStatus `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

// UpdateSurveyRequest represents the request to update a survey
type UpdateSurveyRequest struct {
	Name     *string              `json:"name" validate:"omitnil,min=1,max=30"`
	Form     json.RawMessage      `json:"form" swaggertype:"array,object"`
	SetPoint *string              `json:"set_point"`
	Status   *models.SurveyStatus `json:"status" validate:"omitnil,oneof=active inactive completed"`
}

func (r *UpdateSurveyRequest) isEmpty() bool {
	return r.Name == nil && r.Form == nil && r.SetPoint == nil && r.Status == nil
}

// SurveyResponse represents the response for survey operations
type SurveyResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Form      []models.FormField  `json:"form"`
	SetPoint  *string             `json:"set_point"`
	Status    models.SurveyStatus `json:"status"`
	Events    []EventRef          `json:"events"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// List returns a page of surveys
func (s *SurveyService) List(ctx context.Context, q ListQuery) (*ListResponse[SurveyResponse], error) {
	if q.Status != "" && !models.SurveyStatus(q.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be one of: active, inactive, completed")
	}

	filter := q.filter()
	surveys, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}

	return &ListResponse[SurveyResponse]{
		Items:      mapItems(surveys, s.toResponse),
		Pagination: newPagination(filter, total),
	}, nil
}

// GetByID retrieves a survey by ID
func (s *SurveyService) GetByID(ctx context.Context, id uuid.UUID) (*SurveyResponse, error) {
	survey, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	resp := s.toResponse(survey)
	return &resp, nil
}

// Create creates a new survey after validating its form definition
func (s *SurveyService) Create(ctx context.Context, req *CreateSurveyRequest) (*SurveyResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	fields, err := parseForm(req.Form)
	if err != nil {
		return nil, err
	}

	survey := &models.Survey{
		Name:     req.Name,
		Form:     fields,
		SetPoint: emptyToNil(req.SetPoint),
		Status:   models.SurveyStatusActive,
	}
	if req.Status != "" {
		survey.Status = req.Status
	}

	if err := s.repo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}
	audit.Record(ctx, s.audit, "survey", audit.ActionCreated, survey.ID.String())

	resp := s.toResponse(survey)
	return &resp, nil
}

// Update applies the members present in req. A form, when present, replaces the stored one.
func (s *SurveyService) Update(ctx context.Context, id uuid.UUID, req *UpdateSurveyRequest) (*SurveyResponse, error) {
	if req.isEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var fields []models.FormField
	if req.Form != nil {
		var err error
		if fields, err = parseForm(req.Form); err != nil {
			return nil, err
		}
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	var upd repository.SurveyUpdate
	if req.Name != nil && *req.Name != current.Name {
		upd.Name = req.Name
	}
	if fields != nil && !reflect.DeepEqual(fields, []models.FormField(current.Form)) {
		upd.Form = fields
	}
	if req.SetPoint != nil && !sameText(emptyToNil(req.SetPoint), current.SetPoint) {
		upd.SetPoint = req.SetPoint
	}
	if req.Status != nil && *req.Status != current.Status {
		upd.Status = req.Status
	}

	if upd.IsEmpty() {
		resp := s.toResponse(current)
		return &resp, nil
	}

	survey, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update survey: %w", err)
	}
	audit.Record(ctx, s.audit, "survey", audit.ActionUpdated, id.String())

	resp := s.toResponse(survey)
	return &resp, nil
}

// Delete deletes a survey together with its event links
func (s *SurveyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSurveyNotFound
		}
		return fmt.Errorf("failed to get survey: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	audit.Record(ctx, s.audit, "survey", audit.ActionDeleted, id.String())

	return nil
}

func (s *SurveyService) toResponse(survey *models.Survey) SurveyResponse {
	events := make([]EventRef, 0, len(survey.EventLinks))
	for _, link := range survey.EventLinks {
		if link.Event == nil {
			continue
		}
		ref := eventRef(link.Event)
		ref.FinalFile = link.FinalFile
		events = append(events, ref)
	}

	form := []models.FormField(survey.Form)
	if form == nil {
		form = []models.FormField{}
	}

	return SurveyResponse{
		ID:        survey.ID,
		Name:      survey.Name,
		Form:      form,
		SetPoint:  survey.SetPoint,
		Status:    survey.Status,
		Events:    events,
		CreatedAt: survey.CreatedAt,
		UpdatedAt: survey.UpdatedAt,
	}
}
