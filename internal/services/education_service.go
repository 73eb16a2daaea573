package services

import (
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/patrickmn/go-cache"
)

// EducationService handles business logic for education entries.
type EducationService struct {
	repo  repositories.EducationRepository
	cache *cache.Cache
}

// NewEducationService creates a new EducationService.
func NewEducationService(repo repositories.EducationRepository, pageCache *cache.Cache) *EducationService {
	return &EducationService{
		repo:  repo,
		cache: pageCache,
	}
}

// CreateEducation inserts a new education entry. The exam name is a
// unique column; a second row with the same exam is rejected.
func (s *EducationService) CreateEducation(education *models.Education) error {
	if existing, err := s.repo.GetByExam(education.Exam); err == nil && existing != nil {
		return fmt.Errorf("education with exam %q already exists: %w", education.Exam, repositories.ErrDuplicate)
	}
	if err := s.repo.Create(education); err != nil {
		return err
	}
	invalidateHome(s.cache)
	return nil
}

// GetAllEducation retrieves all education entries, newest first.
func (s *EducationService) GetAllEducation() ([]models.Education, error) {
	return s.repo.GetAll()
}
