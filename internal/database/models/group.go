package models

// Group represents a named set of users that can be attached to events
type Group struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:30;not null;uniqueIndex"`
	Description *string `json:"description" gorm:"type:text"`

	// Relationships
	Users  []User  `json:"users" gorm:"many2many:user_groups"`
	Events []Event `json:"events" gorm:"many2many:group_events"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
