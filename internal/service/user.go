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

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
	audit     audit.Publisher
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate, publisher audit.Publisher) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		audit:     publisher,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,max=30"`
	Email    string      `json:"email" validate:"required,email,max=100"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=admin moderator user"`
	Password string      `json:"password" validate:"required,max=72"`
	Status   *bool       `json:"status"`
}

// UpdateUserRequest represents the request to update a user. Absent members are left untouched.
type UpdateUserRequest struct {
	Username *string      `json:"username" validate:"omitnil,min=1,max=30"`
	Email    *string      `json:"email" validate:"omitnil,email,max=100"`
	Role     *models.Role `json:"role" validate:"omitnil,oneof=admin moderator user"`
	Password *string      `json:"password" validate:"omitnil,min=1,max=72"`
	Status   *bool        `json:"status"`
}

func (r *UpdateUserRequest) isEmpty() bool {
	return r.Username == nil && r.Email == nil && r.Role == nil && r.Password == nil && r.Status == nil
}

// UserResponse represents the response for user operations. The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Status    bool        `json:"status"`
	Groups    []GroupRef  `json:"groups"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// List returns a page of users. Status filters on "active" or "inactive".
func (s *UserService) List(ctx context.Context, q ListQuery) (*ListResponse[UserResponse], error) {
	if q.Role != "" && !models.Role(q.Role).IsValid() {
		return nil, apperrors.NewValidationError("role", "role must be one of: admin, moderator, user")
	}
	if q.Status != "" && q.Status != "active" && q.Status != "inactive" {
		return nil, apperrors.NewValidationError("status", "status must be one of: active, inactive")
	}

	filter := q.filter()
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListResponse[UserResponse]{
		Items:      mapItems(users, s.toResponse),
		Pagination: newPagination(filter, total),
	}, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := s.toResponse(user)
	return &resp, nil
}

// Create creates a new user with a hashed password. Role defaults to user and status to active.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.RoleUser,
		Password: hash,
		Status:   true,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	audit.Record(ctx, s.audit, "user", audit.ActionCreated, user.ID.String())

	resp := s.toResponse(user)
	return &resp, nil
}

// Update applies the members present in req. Members equal to the stored values are
// not written; a request that changes nothing returns the stored user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if req.isEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var upd repository.UserUpdate
	if req.Username != nil && *req.Username != current.Username {
		upd.Username = req.Username
	}
	if req.Email != nil && *req.Email != current.Email {
		upd.Email = req.Email
	}
	if req.Role != nil && *req.Role != current.Role {
		upd.Role = req.Role
	}
	if req.Status != nil && *req.Status != current.Status {
		upd.Status = req.Status
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		upd.Password = &hash
	}

	if upd.IsEmpty() {
		resp := s.toResponse(current)
		return &resp, nil
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	audit.Record(ctx, s.audit, "user", audit.ActionUpdated, id.String())

	resp := s.toResponse(user)
	return &resp, nil
}

// Delete deletes a user and its group memberships
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	audit.Record(ctx, s.audit, "user", audit.ActionDeleted, id.String())

	return nil
}

func (s *UserService) toResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		Groups:    mapItems(user.Groups, groupRef),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
