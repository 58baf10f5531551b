package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-console-backend/internal/audit"
	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo      repository.EventRepositoryInterface
	validator *validator.Validate
	audit     audit.Publisher
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, validator *validator.Validate, publisher audit.Publisher) *EventService {
	return &EventService{
		repo:      repo,
		validator: validator,
		audit:     publisher,
	}
}

// CreateEventRequest represents the request to create an event.
// Times accept RFC 3339 or a zone-less "2006-01-02T15:04[:05]" form read as UTC.
type CreateEventRequest struct {
	Name        string             `json:"name" validate:"required,max=30"`
	Description *string            `json:"description"`
	TimeStart   string             `json:"time_start" validate:"required"`
	TimeEnd     string             `json:"time_end" validate:"required"`
	Status      models.EventStatus `json:"status" validate:"omitempty,oneof=scheduled active completed cancelled"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name        *string             `json:"name" validate:"omitnil,min=1,max=30"`
	Description *string             `json:"description"`
	TimeStart   *string             `json:"time_start"`
	TimeEnd     *string             `json:"time_end"`
	Status      *models.EventStatus `json:"status" validate:"omitnil,oneof=scheduled active completed cancelled"`
}

func (r *UpdateEventRequest) isEmpty() bool {
	return r.Name == nil && r.Description == nil && r.TimeStart == nil && r.TimeEnd == nil && r.Status == nil
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	TimeStart   time.Time          `json:"time_start"`
	TimeEnd     time.Time          `json:"time_end"`
	Status      models.EventStatus `json:"status"`
	Groups      []GroupRef         `json:"groups"`
	Surveys     []SurveyRef        `json:"surveys"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// List returns a page of events, latest start first
func (s *EventService) List(ctx context.Context, q ListQuery) (*ListResponse[EventResponse], error) {
	if q.Status != "" && !models.EventStatus(q.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be one of: scheduled, active, completed, cancelled")
	}

	filter := q.filter()
	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &ListResponse[EventResponse]{
		Items:      mapItems(events, s.toResponse),
		Pagination: newPagination(filter, total),
	}, nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	resp := s.toResponse(event)
	return &resp, nil
}

// Create creates a new event. The end time must be after the start time.
func (s *EventService) Create(ctx context.Context, req *CreateEventRequest) (*EventResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	start, err := parseTime("time_start", req.TimeStart)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("time_end", req.TimeEnd)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	event := &models.Event{
		Name:        req.Name,
		Description: emptyToNil(req.Description),
		TimeStart:   start,
		TimeEnd:     end,
		Status:      models.EventStatusScheduled,
	}
	if req.Status != "" {
		event.Status = req.Status
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	audit.Record(ctx, s.audit, "event", audit.ActionCreated, event.ID.String())

	resp := s.toResponse(event)
	return &resp, nil
}

// Update applies the members present in req. The time range is checked on the
// merged values, so changing only one bound is validated against the stored other.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if req.isEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var upd repository.EventUpdate
	start, end := current.TimeStart, current.TimeEnd
	if req.TimeStart != nil {
		if start, err = parseTime("time_start", *req.TimeStart); err != nil {
			return nil, err
		}
		if !start.Equal(current.TimeStart) {
			upd.TimeStart = &start
		}
	}
	if req.TimeEnd != nil {
		if end, err = parseTime("time_end", *req.TimeEnd); err != nil {
			return nil, err
		}
		if !end.Equal(current.TimeEnd) {
			upd.TimeEnd = &end
		}
	}
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if req.Name != nil && *req.Name != current.Name {
		upd.Name = req.Name
	}
	if req.Description != nil && !sameText(emptyToNil(req.Description), current.Description) {
		upd.Description = req.Description
	}
	if req.Status != nil && *req.Status != current.Status {
		upd.Status = req.Status
	}

	if upd.IsEmpty() {
		resp := s.toResponse(current)
		return &resp, nil
	}

	event, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	audit.Record(ctx, s.audit, "event", audit.ActionUpdated, id.String())

	resp := s.toResponse(event)
	return &resp, nil
}

// Delete deletes an event together with its group and survey links
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	audit.Record(ctx, s.audit, "event", audit.ActionDeleted, id.String())

	return nil
}

func (s *EventService) toResponse(event *models.Event) EventResponse {
	surveys := make([]SurveyRef, 0, len(event.SurveyLinks))
	for _, link := range event.SurveyLinks {
		if link.Survey == nil {
			continue
		}
		ref := surveyRef(link.Survey)
		ref.FinalFile = link.FinalFile
		surveys = append(surveys, ref)
	}

	return EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		TimeStart:   event.TimeStart,
		TimeEnd:     event.TimeEnd,
		Status:      event.Status,
		Groups:      mapItems(event.Groups, groupRef),
		Surveys:     surveys,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}
