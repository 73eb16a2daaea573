package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ToolRepository defines the interface for tool data access.
type ToolRepository interface {
	Create(tool *models.Tool) error
	GetByTitle(title string) (*models.Tool, error)
	GetAll() ([]models.Tool, error)
	BulkUpdate(tools []models.Tool) error
}

// GORMToolRepository is a GORM implementation of ToolRepository.
type GORMToolRepository struct {
	db *gorm.DB
}

// NewGORMToolRepository creates a new instance of GORMToolRepository.
func NewGORMToolRepository(db *gorm.DB) *GORMToolRepository {
	return &GORMToolRepository{
		db: db,
	}
}

// Create inserts a new tool row.
func (r *GORMToolRepository) Create(tool *models.Tool) error {
	if err := r.db.Create(tool).Error; err != nil {
		return fmt.Errorf("failed to create tool: %w", err)
	}
	return nil
}

// GetByTitle retrieves a tool by its unique title.
func (r *GORMToolRepository) GetByTitle(title string) (*models.Tool, error) {
	var tool models.Tool
	if err := r.db.First(&tool, "title = ?", title).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("tool with title %q: %w", title, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tool by title %q: %w", title, err)
	}
	return &tool, nil
}

// GetAll retrieves all tools in storage order.
func (r *GORMToolRepository) GetAll() ([]models.Tool, error) {
	var tools []models.Tool
	if err := r.db.Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tools: %w", err)
	}
	return tools, nil
}

// BulkUpdate applies title and image to each given row inside a single
// transaction. Rows whose id no longer exists are skipped silently.
func (r *GORMToolRepository) BulkUpdate(tools []models.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, tool := range tools {
			res := tx.Model(&models.Tool{}).Where("id = ?", tool.ID).
				Updates(map[string]interface{}{"title": tool.Title, "image": tool.Image})
			if res.Error != nil {
				return fmt.Errorf("failed to update tool %d: %w", tool.ID, res.Error)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tool bulk update failed: %w", err)
	}
	return nil
}
