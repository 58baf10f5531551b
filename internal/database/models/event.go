package models

import "time"

// Event represents a scheduled happening that groups take part in
type Event struct {
	BaseModel
	Name        string      `json:"name" gorm:"size:30;not null"`
	Description *string     `json:"description" gorm:"type:text"`
	TimeStart   time.Time   `json:"time_start" gorm:"not null"`
	TimeEnd     time.Time   `json:"time_end" gorm:"not null"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);not null;index"`

	// Relationships
	Groups      []Group       `json:"groups" gorm:"many2many:group_events"`
	SurveyLinks []EventSurvey `json:"survey_links" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
