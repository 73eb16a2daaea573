package models

import "gorm.io/gorm"

// User represents an admin account for the portfolio.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"type:varchar(250)" validate:"required"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(250)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
}
