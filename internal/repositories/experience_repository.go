package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ExperienceRepository defines the interface for experience data access.
type ExperienceRepository interface {
	Create(experience *models.Experience) error
	GetByID(id uint) (*models.Experience, error)
	GetByCompany(company string) (*models.Experience, error)
	GetAll() ([]models.Experience, error)
	Update(experience *models.Experience) error
}

// GORMExperienceRepository is a GORM implementation of ExperienceRepository.
type GORMExperienceRepository struct {
	db *gorm.DB
}

// NewGORMExperienceRepository creates a new instance of GORMExperienceRepository.
func NewGORMExperienceRepository(db *gorm.DB) *GORMExperienceRepository {
	return &GORMExperienceRepository{
		db: db,
	}
}

// Create inserts a new experience row.
func (r *GORMExperienceRepository) Create(experience *models.Experience) error {
	if err := r.db.Create(experience).Error; err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// GetByID retrieves a single experience row by its id.
func (r *GORMExperienceRepository) GetByID(id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.First(&experience, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("experience with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get experience by ID %d: %w", id, err)
	}
	return &experience, nil
}

// GetByCompany retrieves an experience row by its unique company name.
func (r *GORMExperienceRepository) GetByCompany(company string) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.First(&experience, "company = ?", company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("experience with company %q: %w", company, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get experience by company %q: %w", company, err)
	}
	return &experience, nil
}

// GetAll retrieves all experience rows, newest first.
func (r *GORMExperienceRepository) GetAll() ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.Order("id DESC").Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("failed to get all experience rows: %w", err)
	}
	return experiences, nil
}

// Update overwrites all fields of an existing experience row. Save is
// used deliberately so zero values (a cleared exit date, present=false)
// are written too.
func (r *GORMExperienceRepository) Update(experience *models.Experience) error {
	res := r.db.Save(experience)
	if res.Error != nil {
		return fmt.Errorf("failed to update experience: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("experience with ID %d not found for update: %w", experience.ID, ErrNotFound)
	}
	return nil
}
