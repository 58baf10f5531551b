package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(ctx context.Context, q ListQuery) (*ListResponse[UserResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	List(ctx context.Context, q ListQuery) (*ListResponse[GroupResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error)
	Create(ctx context.Context, req *CreateGroupRequest) (*GroupResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	List(ctx context.Context, q ListQuery) (*ListResponse[EventResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	Create(ctx context.Context, req *CreateEventRequest) (*EventResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SurveyServiceInterface defines the interface for survey service
type SurveyServiceInterface interface {
	List(ctx context.Context, q ListQuery) (*ListResponse[SurveyResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*SurveyResponse, error)
	Create(ctx context.Context, req *CreateSurveyRequest) (*SurveyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSurveyRequest) (*SurveyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RelationServiceInterface defines the interface for relation service
type RelationServiceInterface interface {
	AddUserToGroup(ctx context.Context, req *UserGroupRequest) error
	RemoveUserFromGroup(ctx context.Context, req *UserGroupRequest) error
	AddGroupToEvent(ctx context.Context, req *GroupEventRequest) error
	RemoveGroupFromEvent(ctx context.Context, req *GroupEventRequest) error
	AddSurveyToEvent(ctx context.Context, req *EventSurveyRequest) error
	RemoveSurveyFromEvent(ctx context.Context, req *EventSurveyRequest) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*DashboardStatsResponse, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityResponse, error)
}
