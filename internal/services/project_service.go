package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// ProjectService handles business logic for projects, including the
// project-document lookup behind the detail view.
type ProjectService struct {
	repo        repositories.ProjectRepository
	cache       *cache.Cache
	docsDir     string
	docsBaseURL string
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository, pageCache *cache.Cache, docsDir, docsBaseURL string) *ProjectService {
	return &ProjectService{
		repo:        repo,
		cache:       pageCache,
		docsDir:     docsDir,
		docsBaseURL: docsBaseURL,
	}
}

// CreateProject inserts a new project. The title is a unique column; a
// second row with the same title is rejected.
func (s *ProjectService) CreateProject(project *models.Project) error {
	if existing, err := s.repo.GetByTitle(project.Title); err == nil && existing != nil {
		return fmt.Errorf("project with title %q already exists: %w", project.Title, repositories.ErrDuplicate)
	}
	if err := s.repo.Create(project); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// GetProjectByID retrieves a single project.
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	return s.repo.GetByID(id)
}

// GetAllProjects retrieves all projects in storage order.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.repo.GetAll()
}

// UpdateProject overwrites all fields of an existing project. Moving
// the project onto a title already used by another row is rejected.
func (s *ProjectService) UpdateProject(project *models.Project) error {
	if existing, err := s.repo.GetByTitle(project.Title); err == nil && existing != nil && existing.ID != project.ID {
		return fmt.Errorf("project with title %q already exists: %w", project.Title, repositories.ErrDuplicate)
	}
	if err := s.repo.Update(project); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// DocumentURL resolves the write-up document for a project. The
// expected filename is derived from the title with spaces replaced by
// underscores; the file must actually exist under the docs directory.
func (s *ProjectService) DocumentURL(id uint) (string, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}

	filename := strings.ReplaceAll(project.Title, " ", "_") + ".pdf"
	if _, err := os.Stat(filepath.Join(s.docsDir, filename)); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("document for project %q: %w", project.Title, repositories.ErrNotFound)
		}
		return "", fmt.Errorf("failed to stat document for project %q: %w", project.Title, err)
	}

	return s.docsBaseURL + "/" + filename, nil
}
