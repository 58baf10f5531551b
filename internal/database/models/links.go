package models

import (
	"time"

	"github.com/google/uuid"
)

// UserGroup is a row of the user<->group join table
type UserGroup struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for UserGroup
func (UserGroup) TableName() string {
	return "user_groups"
}

// GroupEvent is a row of the group<->event join table
type GroupEvent struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for GroupEvent
func (GroupEvent) TableName() string {
	return "group_events"
}

// EventSurvey is a row of the event<->survey join table. FinalFile references the
// collected results document for the pair, when one exists.
type EventSurvey struct {
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;primaryKey"`
	SurveyID  uuid.UUID `json:"survey_id" gorm:"type:uuid;primaryKey"`
	FinalFile *string   `json:"final_file" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	Event  *Event  `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Survey *Survey `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for EventSurvey
func (EventSurvey) TableName() string {
	return "event_surveys"
}
