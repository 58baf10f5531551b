package repository

import (
	"context"

	"admin-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter ListFilter) ([]models.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	List(ctx context.Context, filter ListFilter) ([]models.Group, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd GroupUpdate) (*models.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	List(ctx context.Context, filter ListFilter) ([]models.Event, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd EventUpdate) (*models.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SurveyRepositoryInterface defines the interface for survey repository operations
type SurveyRepositoryInterface interface {
	Create(ctx context.Context, survey *models.Survey) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Survey, error)
	List(ctx context.Context, filter ListFilter) ([]models.Survey, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd SurveyUpdate) (*models.Survey, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RelationRepositoryInterface defines the interface for join-table operations
type RelationRepositoryInterface interface {
	AddUserToGroup(ctx context.Context, userID, groupID uuid.UUID) error
	RemoveUserFromGroup(ctx context.Context, userID, groupID uuid.UUID) error
	AddGroupToEvent(ctx context.Context, groupID, eventID uuid.UUID) error
	RemoveGroupFromEvent(ctx context.Context, groupID, eventID uuid.UUID) error
	AddSurveyToEvent(ctx context.Context, eventID, surveyID uuid.UUID, finalFile *string) error
	RemoveSurveyFromEvent(ctx context.Context, eventID, surveyID uuid.UUID) error
}

// DashboardRepositoryInterface defines the interface for dashboard aggregates
type DashboardRepositoryInterface interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]models.Activity, error)
}
