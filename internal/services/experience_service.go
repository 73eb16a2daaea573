package services

import (
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// ExperienceService handles business logic for experience entries.
type ExperienceService struct {
	repo  repositories.ExperienceRepository
	cache *cache.Cache
}

// NewExperienceService creates a new ExperienceService.
func NewExperienceService(repo repositories.ExperienceRepository, pageCache *cache.Cache) *ExperienceService {
	return &ExperienceService{
		repo:  repo,
		cache: pageCache,
	}
}

// normalize enforces the "currently present" rule: while an engagement
// is marked present, any submitted exit date is discarded and stored
// as absent.
func (s *ExperienceService) normalize(experience *models.Experience) {
	if experience.Present {
		experience.ExitDate = nil
	}
}

// CreateExperience inserts a new experience entry. The company name is
// a unique column; a second row with the same company is rejected.
func (s *ExperienceService) CreateExperience(experience *models.Experience) error {
	s.normalize(experience)
	if existing, err := s.repo.GetByCompany(experience.Company); err == nil && existing != nil {
		return fmt.Errorf("experience with company %q already exists: %w", experience.Company, repositories.ErrDuplicate)
	}
	if err := s.repo.Create(experience); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// GetExperienceByID retrieves a single experience entry.
func (s *ExperienceService) GetExperienceByID(id uint) (*models.Experience, error) {
	return s.repo.GetByID(id)
}

// GetAllExperience retrieves all experience entries, newest first.
func (s *ExperienceService) GetAllExperience() ([]models.Experience, error) {
	return s.repo.GetAll()
}

// UpdateExperience overwrites all fields of an existing entry. Moving
// the entry onto a company name already used by another row is rejected.
func (s *ExperienceService) UpdateExperience(experience *models.Experience) error {
	s.normalize(experience)
	if existing, err := s.repo.GetByCompany(experience.Company); err == nil && existing != nil && existing.ID != experience.ID {
		return fmt.Errorf("experience with company %q already exists: %w", experience.Company, repositories.ErrDuplicate)
	}
	if err := s.repo.Update(experience); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}
