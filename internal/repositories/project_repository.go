package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetByTitle(title string) (*models.Project, error)
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
}

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		db: db,
	}
}

// Create inserts a new project row.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID retrieves a single project by its id.
func (r *GORMProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("project with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &project, nil
}

// GetByTitle retrieves a project by its unique title.
func (r *GORMProjectRepository) GetByTitle(title string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "title = ?", title).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("project with title %q: %w", title, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by title %q: %w", title, err)
	}
	return &project, nil
}

// GetAll retrieves all projects in storage order.
func (r *GORMProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	return projects, nil
}

// Update overwrites all fields of an existing project row.
func (r *GORMProjectRepository) Update(project *models.Project) error {
	res := r.db.Save(project)
	if res.Error != nil {
		return fmt.Errorf("failed to update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("project with ID %d not found for update: %w", project.ID, ErrNotFound)
	}
	return nil
}
