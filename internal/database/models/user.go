package models

// User represents an account managed from the admin console
type User struct {
	BaseModel
	Username string `json:"username" gorm:"size:30;not null;uniqueIndex"`
	Email    string `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Role     Role   `json:"role" gorm:"type:varchar(20);not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Status   bool   `json:"status" gorm:"not null"`

	// Relationships
	Groups []Group `json:"groups" gorm:"many2many:user_groups"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
