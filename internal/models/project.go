package models

import "gorm.io/gorm"

// ProjectCategories is the closed set of subject tags a project may
// carry; anything else is rejected at validation time.
var ProjectCategories = []string{"Data_Analytics", "Data_Science", "Web_Development", "Python_Development"}

// Project represents one portfolio project.
type Project struct {
	gorm.Model
	Title       string `json:"title" gorm:"uniqueIndex;type:varchar(250)" validate:"required"`
	Category    string `json:"category" gorm:"type:varchar(250)" validate:"required,oneof=Data_Analytics Data_Science Web_Development Python_Development"`
	Image       string `json:"image" gorm:"type:varchar(250)" validate:"required,url"`
	Description string `json:"description" gorm:"type:text" validate:"required"`
}
