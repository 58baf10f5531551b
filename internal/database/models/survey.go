package models

import "gorm.io/datatypes"

// Survey represents a dynamic form that can be attached to events
type Survey struct {
	BaseModel
	Name     string                         `json:"name" gorm:"size:30;not null"`
	Form     datatypes.JSONSlice[FormField] `json:"form" gorm:"type:jsonb;not null"`
	SetPoint *string                        `json:"set_point" gorm:"type:text"`
	Status   SurveyStatus                   `json:"status" gorm:"type:varchar(20);not null;index"`

	// Relationships
	EventLinks []EventSurvey `json:"event_links" gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for Survey
func (Survey) TableName() string {
	return "surveys"
}

// FormField describes a single control of a survey form
type FormField struct {
	ID       string    `json:"id" yaml:"id"`
	Type     FieldType `json:"type" yaml:"type"`
	Label    string    `json:"label" yaml:"label"`
	Required bool      `json:"required" yaml:"required"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
}
