package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// EducationRepository defines the interface for education data access.
// There is no education edit flow, so the surface stays create and read.
type EducationRepository interface {
	Create(education *models.Education) error
	GetByExam(exam string) (*models.Education, error)
	GetAll() ([]models.Education, error)
}

// GORMEducationRepository is a GORM implementation of EducationRepository.
type GORMEducationRepository struct {
	db *gorm.DB
}

// NewGORMEducationRepository creates a new instance of GORMEducationRepository.
func NewGORMEducationRepository(db *gorm.DB) *GORMEducationRepository {
	return &GORMEducationRepository{
		db: db,
	}
}

// Create inserts a new education row.
func (r *GORMEducationRepository) Create(education *models.Education) error {
	if err := r.db.Create(education).Error; err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	return nil
}

// GetByExam retrieves an education row by its unique exam name.
func (r *GORMEducationRepository) GetByExam(exam string) (*models.Education, error) {
	var education models.Education
	if err := r.db.First(&education, "exam = ?", exam).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("education with exam %q: %w", exam, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get education by exam %q: %w", exam, err)
	}
	return &education, nil
}

// GetAll retrieves all education rows, newest first.
func (r *GORMEducationRepository) GetAll() ([]models.Education, error) {
	var educations []models.Education
	if err := r.db.Order("id DESC").Find(&educations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all education rows: %w", err)
	}
	return educations, nil
}
