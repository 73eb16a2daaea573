package models

import (
	"time"

	"gorm.io/gorm"
)

// Experience represents one employment entry on the portfolio.
// ExitDate is nil while Present is true; the service layer enforces
// that rule on every write.
type Experience struct {
	gorm.Model
	Company        string     `json:"company" gorm:"uniqueIndex;type:varchar(250)"`
	Position       string     `json:"position" gorm:"type:varchar(250)"`
	JoiningDate    time.Time  `json:"joining_date"`
	ExitDate       *time.Time `json:"exit_date"`
	Present        bool       `json:"present"`
	JobDescription string     `json:"job_description" gorm:"type:text"`
}
