package services

import (
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// ToolService handles business logic for tools, including the
// bulk-edit listing flow.
type ToolService struct {
	repo  repositories.ToolRepository
	cache *cache.Cache
}

// NewToolService creates a new ToolService.
func NewToolService(repo repositories.ToolRepository, pageCache *cache.Cache) *ToolService {
	return &ToolService{
		repo:  repo,
		cache: pageCache,
	}
}

// CreateTool inserts a new tool. The title is a unique column; a
// second row with the same title is rejected.
func (s *ToolService) CreateTool(tool *models.Tool) error {
	if existing, err := s.repo.GetByTitle(tool.Title); err == nil && existing != nil {
		return fmt.Errorf("tool with title %q already exists: %w", tool.Title, repositories.ErrDuplicate)
	}
	if err := s.repo.Create(tool); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// GetAllTools retrieves all tools in storage order.
func (s *ToolService) GetAllTools() ([]models.Tool, error) {
	return s.repo.GetAll()
}

// BulkEdit applies every submitted row whose title and image are both
// non-empty, silently skipping incomplete rows, in one commit. It
// returns how many rows were applied.
func (s *ToolService) BulkEdit(rows []models.Tool) (int, error) {
	applied := make([]models.Tool, 0, len(rows))
	for _, row := range rows {
		if row.ID == 0 || row.Title == "" || row.Image == "" {
			continue
		}
		applied = append(applied, row)
	}
	if err := s.repo.BulkUpdate(applied); err != nil {
		return 0, err
	}
	invalidateHome(s.cache)
	return len(applied), nil
}
