package service

import (
	"time"

	"admin-console-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserRef is the short user form embedded in group responses
type UserRef struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// GroupRef is the short group form embedded in user and event responses
type GroupRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// EventRef is the short event form embedded in group and survey responses
type EventRef struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	TimeStart time.Time          `json:"time_start"`
	TimeEnd   time.Time          `json:"time_end"`
	Status    models.EventStatus `json:"status"`
	FinalFile *string            `json:"final_file,omitempty"`
}

// SurveyRef is the short survey form embedded in event responses
type SurveyRef struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Status    models.SurveyStatus `json:"status"`
	FinalFile *string             `json:"final_file,omitempty"`
}

func userRef(u *models.User) UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func groupRef(g *models.Group) GroupRef {
	return GroupRef{ID: g.ID, Name: g.Name}
}

func eventRef(e *models.Event) EventRef {
	return EventRef{ID: e.ID, Name: e.Name, TimeStart: e.TimeStart, TimeEnd: e.TimeEnd, Status: e.Status}
}

func surveyRef(s *models.Survey) SurveyRef {
	return SurveyRef{ID: s.ID, Name: s.Name, Status: s.Status}
}
