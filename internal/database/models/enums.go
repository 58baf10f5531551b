package models

// Role is the administrative role stored on a user. It is recorded but not enforced.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// EventStatus defines the lifecycle states of an event
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// SurveyStatus defines the lifecycle states of a survey
type SurveyStatus string

const (
	SurveyStatusActive    SurveyStatus = "active"
	SurveyStatusInactive  SurveyStatus = "inactive"
	SurveyStatusCompleted SurveyStatus = "completed"
)

// FieldType enumerates the supported survey form controls
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusScheduled, EventStatusActive, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the SurveyStatus is valid
func (s SurveyStatus) IsValid() bool {
	switch s {
	case SurveyStatusActive, SurveyStatusInactive, SurveyStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the FieldType is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeEmail, FieldTypeDate,
		FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

// HasOptions reports whether the control renders a fixed list of choices
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio || t == FieldTypeCheckbox
}
