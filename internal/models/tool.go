package models

import "gorm.io/gorm"

// Tool represents one tool or technology shown on the portfolio.
type Tool struct {
	gorm.Model
	Title string `json:"title" gorm:"uniqueIndex;type:varchar(250)" validate:"required"`
	Image string `json:"image" gorm:"type:varchar(250)" validate:"required,url"`
}
