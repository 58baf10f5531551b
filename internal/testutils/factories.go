package testutils

import (
	"time"

	"admin-console-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// suffix returns a short random token keeping generated names within column limits
func suffix() string {
	return uuid.NewString()[:8]
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test user with a unique username and email
func (f *UserFactory) Create() *models.User {
	name := "user_" + suffix()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	return &models.User{
		Username: name,
		Email:    name + "@example.com",
		Role:     models.RoleUser,
		Password: string(hash),
		Status:   true,
	}
}

// WithUsername creates a test user with the given username and a matching email
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@example.com"
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test group with a unique name
func (f *GroupFactory) Create() *models.Group {
	description := "A test group"
	return &models.Group{
		Name:        "group_" + suffix(),
		Description: &description,
	}
}

// WithName creates a test group with the given name
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a scheduled two-hour test event starting tomorrow
func (f *EventFactory) Create() *models.Event {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &models.Event{
		Name:      "event_" + suffix(),
		TimeStart: start,
		TimeEnd:   start.Add(2 * time.Hour),
		Status:    models.EventStatusScheduled,
	}
}

// WithStatus creates a test event in the given state
func (f *EventFactory) WithStatus(status models.EventStatus) *models.Event {
	event := f.Create()
	event.Status = status
	return event
}

// SurveyFactory provides methods to create test Survey data
type SurveyFactory struct{}

// NewSurveyFactory creates a new SurveyFactory
func NewSurveyFactory() *SurveyFactory {
	return &SurveyFactory{}
}

// Create creates an active test survey with a two-field form
func (f *SurveyFactory) Create() *models.Survey {
	return &models.Survey{
		Name: "survey_" + suffix(),
		Form: []models.FormField{
			{ID: "rating", Type: models.FieldTypeRadio, Label: "Rating", Required: true, Options: []string{"1", "2", "3"}},
			{ID: "comments", Type: models.FieldTypeTextarea, Label: "Comments"},
		},
		Status: models.SurveyStatusActive,
	}
}

// WithStatus creates a test survey in the given state
func (f *SurveyFactory) WithStatus(status models.SurveyStatus) *models.Survey {
	survey := f.Create()
	survey.Status = status
	return survey
}

// FactorySet bundles one factory per entity
type FactorySet struct {
	User   *UserFactory
	Group  *GroupFactory
	Event  *EventFactory
	Survey *SurveyFactory
}

// NewFactorySet creates a FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:   NewUserFactory(),
		Group:  NewGroupFactory(),
		Event:  NewEventFactory(),
		Survey: NewSurveyFactory(),
	}
}
