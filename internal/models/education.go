package models

import "gorm.io/gorm"

// Education represents one qualification entry on the portfolio.
type Education struct {
	gorm.Model
	Exam        string  `json:"exam" gorm:"uniqueIndex;type:varchar(250)" validate:"required"`
	Institute   string  `json:"institute" gorm:"type:varchar(250)" validate:"required"`
	University  string  `json:"university" gorm:"type:varchar(250)" validate:"required"`
	Year        string  `json:"year" gorm:"type:varchar(250)" validate:"required"`
	Marks       float64 `json:"marks" validate:"required"`
	Description string  `json:"description" gorm:"type:text" validate:"required"`
}
