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

// GroupService handles business logic for groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	validator *validator.Validate
	audit     audit.Publisher
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, validator *validator.Validate, publisher audit.Publisher) *GroupService {
	return &GroupService{
		repo:      repo,
		validator: validator,
		audit:     publisher,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,max=30"`
	Description *string `json:"description"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=30"`
	Description *string `json:"description"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Users       []UserRef  `json:"users"`
	Events      []EventRef `json:"events"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// List returns a page of groups matching the search term
func (s *GroupService) List(ctx context.Context, q ListQuery) (*ListResponse[GroupResponse], error) {
	filter := q.filter()
	groups, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &ListResponse[GroupResponse]{
		Items:      mapItems(groups, s.toResponse),
		Pagination: newPagination(filter, total),
	}, nil
}

// GetByID retrieves a group by ID
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	resp := s.toResponse(group)
	return &resp, nil
}

// Create creates a new group
func (s *GroupService) Create(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:        req.Name,
		Description: emptyToNil(req.Description),
	}

	if err := s.repo.Create(ctx, group); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	audit.Record(ctx, s.audit, "group", audit.ActionCreated, group.ID.String())

	resp := s.toResponse(group)
	return &resp, nil
}

// Update applies the members present in req. An empty description clears it.
func (s *GroupService) Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if req.Name == nil && req.Description == nil {
		return nil, apperrors.ErrNothingToUpdate
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var upd repository.GroupUpdate
	if req.Name != nil && *req.Name != current.Name {
		upd.Name = req.Name
	}
	if req.Description != nil && !sameText(emptyToNil(req.Description), current.Description) {
		upd.Description = req.Description
	}

	if upd.IsEmpty() {
		resp := s.toResponse(current)
		return &resp, nil
	}

	group, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		if apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	audit.Record(ctx, s.audit, "group", audit.ActionUpdated, id.String())

	resp := s.toResponse(group)
	return &resp, nil
}

// Delete deletes a group together with its memberships and event links
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	audit.Record(ctx, s.audit, "group", audit.ActionDeleted, id.String())

	return nil
}

func (s *GroupService) toResponse(group *models.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Users:       mapItems(group.Users, userRef),
		Events:      mapItems(group.Events, eventRef),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// emptyToNil maps a pointer to "" to nil so optional text is stored as NULL
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
