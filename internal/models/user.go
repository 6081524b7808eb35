// Package models contains data models for the story service.
package models

// User represents a registered user. Users are pre-seeded; the service
// never creates or updates them.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Salt     string `json:"-" gorm:"not null"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "user"
}
