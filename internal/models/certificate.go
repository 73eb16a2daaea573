package models

import "gorm.io/gorm"

// Certificate represents one certificate shown on the portfolio.
type Certificate struct {
	gorm.Model
	Title string `json:"title" gorm:"uniqueIndex;type:varchar(250)" validate:"required"`
	Image string `json:"image" gorm:"type:varchar(250)" validate:"required,url"`
}
